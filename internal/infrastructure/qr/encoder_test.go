package qr

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPNG(t *testing.T) {
	data, err := NewEncoder().PNG("upi://pay?pa=cafe@upi&pn=Digital Drip Café&am=346.5&cu=INR&tn=Bill", 300)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("size = %dx%d, want 300x300", b.Dx(), b.Dy())
	}
}

func TestPNGRejectsEmptyContent(t *testing.T) {
	if _, err := NewEncoder().PNG("", 256); err == nil {
		t.Fatal("expected error for empty content")
	}
}
