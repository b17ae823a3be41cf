package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/pkg/apperror"
	"github.com/sangkips/drip-billing/pkg/money"
	"github.com/sangkips/drip-billing/pkg/printer"
)

// PrinterService formats bills for thermal printers and sends them.
type PrinterService struct {
	printer  printer.Printer
	merchant entity.Merchant
	style    money.Style
	taxLabel string
	width    int
}

// NewPrinterService creates a new printer service. width is the printer's
// line width in characters.
func NewPrinterService(p printer.Printer, merchant entity.Merchant, style money.Style, taxLabel string, width int) *PrinterService {
	if taxLabel == "" {
		taxLabel = "GST"
	}
	return &PrinterService{
		printer:  p,
		merchant: merchant,
		style:    style,
		taxLabel: taxLabel,
		width:    width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printer.Type() != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printer.Type(),
		Width:      s.width,
	}
}

// PrintBill sends the bill's ESC/POS receipt to the printer.
func (s *PrinterService) PrintBill(ctx context.Context, bill *entity.Bill) error {
	if bill == nil {
		return apperror.ErrNoBill
	}
	if s.printer.Type() == "none" {
		return apperror.NewCapabilityError("Thermal printer")
	}
	if err := s.printer.Print(ctx, s.FormatBill(bill)); err != nil {
		slog.Error("printer error", "bill_number", bill.Number, "type", s.printer.Type(), "error", err)
		return apperror.NewIOError("Failed to print receipt", err)
	}
	return nil
}

// FormatBill converts a bill into ESC/POS bytes.
func (s *PrinterService) FormatBill(bill *entity.Bill) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.merchant.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	for _, line := range s.merchant.AddressLines {
		doc.Text(line)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill No:", strconv.Itoa(bill.Number)).
		KeyValue("Date:", bill.FormattedTime())
	if bill.Customer.Name != "" {
		doc.KeyValue("Customer:", bill.Customer.Name)
	}
	if bill.Customer.Phone != "" {
		doc.KeyValue("Phone:", bill.Customer.Phone)
	}

	doc.Separator('-').
		Row("ITEM", "QTY", "TOTAL").
		Separator('-')

	for _, li := range bill.LineItems {
		doc.Row(li.Name, strconv.Itoa(li.Quantity), s.style.Render(li.LineTotal))
		if li.Quantity > 1 {
			doc.TextF("  @ %s each", s.style.Render(li.UnitPrice))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", s.style.Render(bill.Subtotal)).
		KeyValue(taxCaption(s.taxLabel, bill.TaxRate)+":", s.style.RenderComputed(bill.Tax)).
		SetBold(true).
		KeyValue("TOTAL:", s.style.RenderComputed(bill.GrandTotal)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
