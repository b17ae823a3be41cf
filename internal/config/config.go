package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/domain/enum"
)

type Config struct {
	App       AppConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Cafe      CafeConfig
	Menu      MenuConfig
	Billing   BillingConfig
	Payment   PaymentConfig
	Output    OutputConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	LogLevel string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type CafeConfig struct {
	Name         string
	AddressLines []string
}

// MenuConfig holds the raw menu definition, "Name:price" entries
// separated by semicolons, in the order they should appear on bills.
type MenuConfig struct {
	Items string
}

type BillingConfig struct {
	TaxRate       string
	TaxLabel      string
	BillNumberMin int
	BillNumberMax int
}

type PaymentConfig struct {
	PayeeAddress string
	PayeeName    string
	Note         string
	Scheme       string
	Currency     string
	EscapeFields bool
}

type OutputConfig struct {
	BillsDir           string
	LogoPath           string
	PDFEnabled         bool
	QREnabled          bool
	TextCurrencySymbol string
	TextMoneyFormat    string
	PDFCurrencySymbol  string
	PDFMoneyFormat     string
	PDFFontDir         string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

const (
	defaultMenu    = "Latte:120;Espresso:100;Cappuccino:150;Cold Coffee:130;Sandwich:90;Burger:120;Momos:80;French Fries:70"
	defaultAddress = "Ground Floor, Tech Innovation Hub|Near Central Library|Sundernagar, Himachal Pradesh – 175002"
)

// Load reads configuration from .env in the working directory and the
// environment.
func Load() *Config {
	return LoadFile(".env")
}

// LoadFile reads configuration from the given dotenv file and the
// environment. A missing file is not an error.
func LoadFile(path string) *Config {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		slog.Warn("config file not found, using environment variables", "path", path, "error", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "drip-billing")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("CAFE_NAME", "Digital Drip Café")
	viper.SetDefault("CAFE_ADDRESS_LINES", defaultAddress)
	viper.SetDefault("MENU_ITEMS", defaultMenu)
	viper.SetDefault("TAX_RATE", "0.05")
	viper.SetDefault("TAX_LABEL", "GST")
	viper.SetDefault("BILL_NUMBER_MIN", 10000)
	viper.SetDefault("BILL_NUMBER_MAX", 99999)
	viper.SetDefault("PAYMENT_PAYEE_ADDRESS", "digitaldripcafe@upi")
	viper.SetDefault("PAYMENT_PAYEE_NAME", "Digital Drip Café")
	viper.SetDefault("PAYMENT_NOTE", "Digital Drip Café Bill")
	viper.SetDefault("PAYMENT_SCHEME", "upi")
	viper.SetDefault("PAYMENT_CURRENCY", "INR")
	viper.SetDefault("PAYMENT_ESCAPE_FIELDS", false)
	viper.SetDefault("OUTPUT_BILLS_DIR", "bills")
	viper.SetDefault("OUTPUT_LOGO_PATH", "logo.png")
	viper.SetDefault("OUTPUT_PDF_ENABLED", true)
	viper.SetDefault("OUTPUT_QR_ENABLED", true)
	viper.SetDefault("TEXT_CURRENCY_SYMBOL", "₹")
	viper.SetDefault("TEXT_MONEY_FORMAT", "plain")
	viper.SetDefault("PDF_CURRENCY_SYMBOL", "Rs.")
	viper.SetDefault("PDF_MONEY_FORMAT", "fixed")
	viper.SetDefault("PDF_FONT_DIR", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 48)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Cafe: CafeConfig{
			Name:         viper.GetString("CAFE_NAME"),
			AddressLines: splitList(viper.GetString("CAFE_ADDRESS_LINES"), "|"),
		},
		Menu: MenuConfig{
			Items: viper.GetString("MENU_ITEMS"),
		},
		Billing: BillingConfig{
			TaxRate:       viper.GetString("TAX_RATE"),
			TaxLabel:      viper.GetString("TAX_LABEL"),
			BillNumberMin: viper.GetInt("BILL_NUMBER_MIN"),
			BillNumberMax: viper.GetInt("BILL_NUMBER_MAX"),
		},
		Payment: PaymentConfig{
			PayeeAddress: viper.GetString("PAYMENT_PAYEE_ADDRESS"),
			PayeeName:    viper.GetString("PAYMENT_PAYEE_NAME"),
			Note:         viper.GetString("PAYMENT_NOTE"),
			Scheme:       viper.GetString("PAYMENT_SCHEME"),
			Currency:     viper.GetString("PAYMENT_CURRENCY"),
			EscapeFields: viper.GetBool("PAYMENT_ESCAPE_FIELDS"),
		},
		Output: OutputConfig{
			BillsDir:           viper.GetString("OUTPUT_BILLS_DIR"),
			LogoPath:           viper.GetString("OUTPUT_LOGO_PATH"),
			PDFEnabled:         viper.GetBool("OUTPUT_PDF_ENABLED"),
			QREnabled:          viper.GetBool("OUTPUT_QR_ENABLED"),
			TextCurrencySymbol: viper.GetString("TEXT_CURRENCY_SYMBOL"),
			TextMoneyFormat:    viper.GetString("TEXT_MONEY_FORMAT"),
			PDFCurrencySymbol:  viper.GetString("PDF_CURRENCY_SYMBOL"),
			PDFMoneyFormat:     viper.GetString("PDF_MONEY_FORMAT"),
			PDFFontDir:         viper.GetString("PDF_FONT_DIR"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}

// Build parses the menu definition.
func (c *MenuConfig) Build() (*entity.Menu, error) {
	var items []entity.MenuItem
	for _, entry := range splitList(c.Items, ";") {
		i := strings.LastIndex(entry, ":")
		if i <= 0 {
			return nil, fmt.Errorf("config: menu entry %q must look like Name:price", entry)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(entry[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("config: menu entry %q: %w", entry, err)
		}
		items = append(items, entity.MenuItem{
			Name:      strings.TrimSpace(entry[:i]),
			UnitPrice: price,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("config: menu is empty")
	}
	return entity.NewMenu(items)
}

// Rate parses the tax rate, e.g. "0.05" for 5%.
func (c *BillingConfig) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: tax rate %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: tax rate %q must not be negative", c.TaxRate)
	}
	return rate, nil
}

// Merchant assembles the café identity from the cafe and payment sections.
func (c *Config) Merchant() entity.Merchant {
	return entity.Merchant{
		Name:         c.Cafe.Name,
		AddressLines: c.Cafe.AddressLines,
		Payee: entity.Payee{
			Address:  c.Payment.PayeeAddress,
			Name:     c.Payment.PayeeName,
			Note:     c.Payment.Note,
			Scheme:   c.Payment.Scheme,
			Currency: c.Payment.Currency,
		},
	}
}

// MoneyFormats parses the text and PDF money formats.
func (c *OutputConfig) MoneyFormats() (text, pdf enum.MoneyFormat, err error) {
	if text, err = enum.ParseMoneyFormat(c.TextMoneyFormat); err != nil {
		return
	}
	pdf, err = enum.ParseMoneyFormat(c.PDFMoneyFormat)
	return
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
