package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore writes receipts and other artifacts to disk. Every write lands
// in a temporary file next to the destination and is renamed into place
// only once it is complete, so a failed write never leaves a partial file
// behind under the final name.
type FileStore struct {
	fs       afero.Fs
	billsDir string
	intN     func(n int) int
}

// NewFileStore creates a store rooted in fs that saves text receipts under
// billsDir.
func NewFileStore(fs afero.Fs, billsDir string) *FileStore {
	return &FileStore{fs: fs, billsDir: billsDir, intN: rand.Intn}
}

// BillsDir is where text receipts and default-named outputs are saved.
func (s *FileStore) BillsDir() string {
	return s.billsDir
}

// SaveReceipt writes content to <billsDir>/bill_<1000-9999>.txt, creating
// the directory if needed, and returns the path written. The suffix is
// random and an existing file with the same name is replaced.
func (s *FileStore) SaveReceipt(content string) (string, error) {
	name := fmt.Sprintf("bill_%d.txt", 1000+s.intN(9000))
	path := filepath.Join(s.billsDir, name)
	if err := s.WriteFile(path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile atomically replaces path with data.
func (s *FileStore) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("storage: close %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpName, 0o644); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("storage: chmod %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("storage: rename into %s: %w", path, err)
	}
	return nil
}

// ReadOptional reads path, reporting ok=false when it does not exist.
func (s *FileStore) ReadOptional(path string) (data []byte, ok bool, err error) {
	if path == "" {
		return nil, false, nil
	}
	data, err = afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, true, nil
}
