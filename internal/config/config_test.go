package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/sangkips/drip-billing/internal/domain/enum"
)

func loadForTest(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return LoadFile(filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadForTest(t)

	if cfg.Cafe.Name != "Digital Drip Café" {
		t.Errorf("cafe name = %q", cfg.Cafe.Name)
	}
	if len(cfg.Cafe.AddressLines) != 3 || cfg.Cafe.AddressLines[0] != "Ground Floor, Tech Innovation Hub" {
		t.Errorf("address lines = %#v", cfg.Cafe.AddressLines)
	}

	menu, err := cfg.Menu.Build()
	if err != nil {
		t.Fatalf("menu build: %v", err)
	}
	items := menu.Items()
	if len(items) != 8 {
		t.Fatalf("menu has %d items, want 8", len(items))
	}
	if items[3].Name != "Cold Coffee" || !items[3].UnitPrice.Equal(decimal.NewFromInt(130)) {
		t.Errorf("item 3 = %+v", items[3])
	}

	rate, err := cfg.Billing.Rate()
	if err != nil || !rate.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("rate = %v, %v", rate, err)
	}

	text, pdf, err := cfg.Output.MoneyFormats()
	if err != nil || text != enum.MoneyFormatPlain || pdf != enum.MoneyFormatFixed {
		t.Errorf("money formats = %v, %v, %v", text, pdf, err)
	}

	m := cfg.Merchant()
	if m.Payee.Scheme != "upi" || m.Payee.Currency != "INR" || m.Payee.Address != "digitaldripcafe@upi" {
		t.Errorf("payee = %+v", m.Payee)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MENU_ITEMS", "Tea:20; Scone:45.50")
	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("PRINTER_TYPE", "network")
	t.Setenv("OUTPUT_QR_ENABLED", "false")

	cfg := loadForTest(t)

	menu, err := cfg.Menu.Build()
	if err != nil {
		t.Fatalf("menu build: %v", err)
	}
	scone, ok := menu.Lookup("Scone")
	if !ok || !scone.UnitPrice.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("scone = %+v, %v", scone, ok)
	}
	if rate, _ := cfg.Billing.Rate(); !rate.Equal(decimal.RequireFromString("0.18")) {
		t.Errorf("rate = %v", rate)
	}
	if cfg.Printer.Type != "network" {
		t.Errorf("printer type = %q", cfg.Printer.Type)
	}
	if cfg.Output.QREnabled {
		t.Error("QR should be disabled")
	}
}

func TestLoadFromDotenvFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), ".env")
	content := "CAFE_NAME=Bean There\nPAYMENT_PAYEE_ADDRESS=beanthere@upi\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg := LoadFile(path)
	if cfg.Cafe.Name != "Bean There" {
		t.Errorf("cafe name = %q", cfg.Cafe.Name)
	}
	if cfg.Payment.PayeeAddress != "beanthere@upi" {
		t.Errorf("payee = %q", cfg.Payment.PayeeAddress)
	}
}

func TestMenuBuildErrors(t *testing.T) {
	tests := []string{
		"",
		"Latte",
		"Latte:abc",
		"Latte:120;Latte:130",
		":120",
	}
	for _, items := range tests {
		c := MenuConfig{Items: items}
		if _, err := c.Build(); err == nil {
			t.Errorf("Build(%q) expected error", items)
		}
	}
}

func TestBillingRateErrors(t *testing.T) {
	for _, rate := range []string{"five", "-0.05"} {
		c := BillingConfig{TaxRate: rate}
		if _, err := c.Rate(); err == nil {
			t.Errorf("Rate(%q) expected error", rate)
		}
	}
}
