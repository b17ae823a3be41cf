package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"github.com/sangkips/drip-billing/internal/application/service"
	"github.com/sangkips/drip-billing/internal/config"
	"github.com/sangkips/drip-billing/internal/infrastructure/pdf"
	"github.com/sangkips/drip-billing/internal/infrastructure/qr"
	"github.com/sangkips/drip-billing/internal/infrastructure/storage"
	"github.com/sangkips/drip-billing/internal/presentation/http/handler"
	"github.com/sangkips/drip-billing/internal/presentation/http/routes"
	"github.com/sangkips/drip-billing/pkg/logging"
	"github.com/sangkips/drip-billing/pkg/money"
	"github.com/sangkips/drip-billing/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.App.LogLevel)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	menu, err := cfg.Menu.Build()
	if err != nil {
		fatal("Invalid menu", err)
	}
	rate, err := cfg.Billing.Rate()
	if err != nil {
		fatal("Invalid tax rate", err)
	}
	textFormat, pdfFormat, err := cfg.Output.MoneyFormats()
	if err != nil {
		fatal("Invalid money format", err)
	}
	merchant := cfg.Merchant()
	pdfStyle := money.Style{Symbol: cfg.Output.PDFCurrencySymbol, Format: pdfFormat}

	// Initialize services
	billingService := service.NewBillingService(rate, cfg.Billing.BillNumberMin, cfg.Billing.BillNumberMax)
	formatter := service.NewReceiptFormatter(merchant, service.FormatterConfig{
		TaxLabel: cfg.Billing.TaxLabel,
		Text:     money.Style{Symbol: cfg.Output.TextCurrencySymbol, Format: textFormat},
		PDF:      pdfStyle,
	})
	paymentService := service.NewPaymentService(merchant.Payee, cfg.Payment.EscapeFields)
	if err := paymentService.Validate(); err != nil {
		slog.Warn("Payment QR codes unavailable until the payee is configured", "error", err)
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		slog.Warn("Failed to initialize printer", "error", err)
		thermalPrinter = printer.NullPrinter{}
	}
	printerService := service.NewPrinterService(thermalPrinter, merchant, pdfStyle, cfg.Billing.TaxLabel, cfg.Printer.Width)

	deps := service.TillDeps{
		Menu:      menu,
		Billing:   billingService,
		Formatter: formatter,
		Payment:   paymentService,
		Printer:   printerService,
		Store:     storage.NewFileStore(afero.NewOsFs(), cfg.Output.BillsDir),
		LogoPath:  cfg.Output.LogoPath,
	}
	if cfg.Output.PDFEnabled {
		deps.PDF = pdf.NewRenderer(cfg.Output.PDFFontDir)
	}
	if cfg.Output.QREnabled {
		deps.QR = qr.NewEncoder()
	}
	tillService := service.NewTillService(deps)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:    handler.NewMenuHandler(menu, merchant),
		Till:    handler.NewTillHandler(tillService),
		Printer: handler.NewPrinterHandler(tillService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server",
		"service", cfg.App.Name,
		"port", port,
		"env", cfg.App.Env,
		"menu_items", menu.Len(),
		"pdf", cfg.Output.PDFEnabled,
		"qr", cfg.Output.QREnabled,
		"printer", thermalPrinter.Type(),
	)

	if err := router.Run(":" + port); err != nil {
		fatal("Failed to start server", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
