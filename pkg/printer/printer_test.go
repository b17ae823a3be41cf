package printer

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantType string
		wantErr  bool
	}{
		{"none", Config{Type: "none"}, "none", false},
		{"empty means none", Config{}, "none", false},
		{"usb", Config{Type: "usb", USBPath: "/dev/usb/lp0"}, "usb", false},
		{"usb without path", Config{Type: "usb"}, "", true},
		{"network", Config{Type: "network", Address: "127.0.0.1:9100"}, "network", false},
		{"network without address", Config{Type: "network"}, "", true},
		{"unknown", Config{Type: "bluetooth"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && p.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", p.Type(), tt.wantType)
			}
		})
	}
}

func TestUSBPrinterWritesDeviceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("create device: %v", err)
	}
	p, _ := New(Config{Type: "usb", USBPath: path})

	if !p.IsConnected(context.Background()) {
		t.Fatal("device file exists, printer should be connected")
	}
	if err := p.Print(context.Background(), []byte{ESC, '@', 'h', 'i'}); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if !bytes.Equal(got, []byte{ESC, '@', 'h', 'i'}) {
		t.Errorf("device got %v", got)
	}
}

func TestUSBPrinterMissingDevice(t *testing.T) {
	p, _ := New(Config{Type: "usb", USBPath: filepath.Join(t.TempDir(), "missing")})
	if p.IsConnected(context.Background()) {
		t.Error("missing device should not be connected")
	}
	if err := p.Print(context.Background(), []byte("x")); err == nil {
		t.Error("expected error printing to a missing device")
	}
}

func TestNetworkPrinterSendsBytes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	p, _ := New(Config{Type: "network", Address: ln.Addr().String()})
	if err := p.Print(context.Background(), []byte("receipt")); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := <-received; string(got) != "receipt" {
		t.Errorf("printer received %q", got)
	}
}
