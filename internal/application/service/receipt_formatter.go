package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/domain/enum"
	"github.com/sangkips/drip-billing/pkg/apperror"
	"github.com/sangkips/drip-billing/pkg/money"
)

// Plain-text receipt geometry, in characters.
const (
	textIndent     = "    "
	textRuleWidth  = 56
	textItemWidth  = 28
	textQtyWidth   = 6
	textTotalWidth = 12
)

// PDF receipt geometry, in points from the bottom-left corner.
const (
	pdfLeftX        = 40.0
	pdfHeaderX      = 160.0
	pdfRightX       = 560.0
	pdfRuleWidth    = 90
	pdfItemWidth    = 40
	pdfQtyWidth     = 8
	pdfTotalWidth   = 12
	pdfLineStep     = 16.0
	pdfTotalsStep   = 14.0
	pdfTotalsHeight = 8 + pdfLineStep + 2*pdfTotalsStep
	pdfLogoW        = 100.0
	pdfLogoH        = 80.0
	pdfQRX          = 40.0
	pdfQRY          = 40.0
	pdfQRSize       = 120.0
)

var (
	fontTitle = entity.Font{Family: "Helvetica", Style: "B", Size: 14}
	fontPlain = entity.Font{Family: "Helvetica", Size: 10}
	fontMono  = entity.Font{Family: "Courier", Size: 10}
	fontTotal = entity.Font{Family: "Helvetica", Style: "B", Size: 12}
)

// FormatterConfig controls how receipts present money and where the PDF
// page ends.
type FormatterConfig struct {
	TaxLabel string
	Text     money.Style
	PDF      money.Style
	Layout   entity.PageLayout
}

// PDFOptions selects the optional images drawn on a PDF receipt.
type PDFOptions struct {
	Logo      bool
	PaymentQR bool
}

// ReceiptFormatter lays a bill out as plain text or as PDF draw directives.
type ReceiptFormatter struct {
	merchant entity.Merchant
	cfg      FormatterConfig
}

// NewReceiptFormatter creates a formatter for merchant.
func NewReceiptFormatter(merchant entity.Merchant, cfg FormatterConfig) *ReceiptFormatter {
	if cfg.TaxLabel == "" {
		cfg.TaxLabel = "GST"
	}
	if cfg.Layout.Height == 0 {
		cfg.Layout = entity.A4Receipt
	}
	return &ReceiptFormatter{merchant: merchant, cfg: cfg}
}

// Layout returns the page the PDF directives are laid out on.
func (f *ReceiptFormatter) Layout() entity.PageLayout {
	return f.cfg.Layout
}

// RenderText renders the fixed-width receipt used on screen and in text
// files.
func (f *ReceiptFormatter) RenderText(bill *entity.Bill) (string, error) {
	if bill == nil {
		return "", apperror.ErrNoBill
	}

	var b strings.Builder
	b.WriteString(textIndent + f.merchant.Name + "\n")
	for _, line := range f.merchant.AddressLines {
		b.WriteString(textIndent + line + "\n")
	}
	if !bill.Customer.IsEmpty() {
		fmt.Fprintf(&b, "%sCustomer: %s   Phone: %s\n", textIndent, bill.Customer.Name, bill.Customer.Phone)
	}
	fmt.Fprintf(&b, "%sBill No: %d    Date: %s\n", textIndent, bill.Number, bill.FormattedTime())

	rule := strings.Repeat("-", textRuleWidth) + "\n"
	b.WriteString(rule)
	b.WriteString(textRow("ITEM", "QTY", "TOTAL"))
	b.WriteString(rule)
	for _, li := range bill.LineItems {
		b.WriteString(textRow(li.Name, strconv.Itoa(li.Quantity), f.cfg.Text.Render(li.LineTotal)))
	}
	b.WriteString(rule)
	b.WriteString(textRow("Subtotal", "", f.cfg.Text.Render(bill.Subtotal)))
	b.WriteString(textRow(f.taxCaption(bill), "", f.cfg.Text.RenderComputed(bill.Tax)))
	b.WriteString(textRow("Total", "", f.cfg.Text.RenderComputed(bill.GrandTotal)))
	return b.String(), nil
}

func textRow(item, qty, total string) string {
	return fmt.Sprintf("%-*s%-*s%*s\n", textItemWidth, item, textQtyWidth, qty, textTotalWidth, total)
}

// RenderPDF lays the bill out top-down on the configured page. Line items
// that would run below the bottom margin continue on a new page; the logo
// sits at a fixed spot on the first page and the payment QR at the
// bottom-left of the last page.
func (f *ReceiptFormatter) RenderPDF(bill *entity.Bill, opts PDFOptions) (*entity.ReceiptDocument, error) {
	if bill == nil {
		return nil, apperror.ErrNoBill
	}

	layout := f.cfg.Layout
	top := layout.Height - layout.TopMargin
	doc := &entity.ReceiptDocument{BillNumber: bill.Number, Layout: layout}
	text := func(x, y float64, font entity.Font, s string) {
		doc.Ops = append(doc.Ops, entity.DrawOp{Kind: enum.DrawText, X: x, Y: y, Font: font, Text: s})
	}
	textRight := func(x, y float64, font entity.Font, s string) {
		doc.Ops = append(doc.Ops, entity.DrawOp{Kind: enum.DrawTextRight, X: x, Y: y, Font: font, Text: s})
	}
	pageBreak := func() float64 {
		doc.Ops = append(doc.Ops, entity.DrawOp{Kind: enum.DrawPageBreak})
		return top
	}

	y := top
	if opts.Logo {
		doc.Ops = append(doc.Ops, entity.DrawOp{
			Kind:  enum.DrawImage,
			Image: enum.ImageSlotLogo,
			X:     pdfLeftX,
			Y:     y - pdfLogoH,
			W:     pdfLogoW,
			H:     pdfLogoH,
		})
	}
	text(pdfHeaderX, y-20, fontTitle, f.merchant.Name)
	for i, line := range f.merchant.AddressLines {
		text(pdfHeaderX, y-40-float64(i)*12, fontPlain, line)
	}

	y -= 90
	text(pdfLeftX, y, fontMono, fmt.Sprintf("Bill No: %d    Date: %s", bill.Number, bill.FormattedTime()))
	y -= pdfLineStep
	if !bill.Customer.IsEmpty() {
		text(pdfLeftX, y, fontMono, fmt.Sprintf("Customer: %s    Phone: %s", bill.Customer.Name, bill.Customer.Phone))
		y -= pdfLineStep
	}

	rule := strings.Repeat("-", pdfRuleWidth)
	text(pdfLeftX, y, fontMono, rule)
	y -= pdfLineStep
	text(pdfLeftX, y, fontMono, pdfRow("ITEM", "QTY", "TOTAL"))
	y -= pdfTotalsStep
	text(pdfLeftX, y, fontMono, rule)
	y -= 18

	for _, li := range bill.LineItems {
		text(pdfLeftX, y, fontMono, pdfRow(li.Name, strconv.Itoa(li.Quantity), f.cfg.PDF.Render(li.LineTotal)))
		y -= pdfLineStep
		if y < layout.BottomMargin {
			y = pageBreak()
		}
	}

	// Keep the totals block together above the bottom margin.
	if y-pdfTotalsHeight < layout.BottomMargin {
		y = pageBreak()
	}
	y -= 8
	text(pdfLeftX, y, fontMono, rule)
	y -= pdfLineStep
	textRight(pdfRightX, y, fontMono, "Subtotal: "+f.cfg.PDF.Render(bill.Subtotal))
	y -= pdfTotalsStep
	textRight(pdfRightX, y, fontMono, f.taxCaption(bill)+": "+f.cfg.PDF.RenderComputed(bill.Tax))
	y -= pdfTotalsStep
	textRight(pdfRightX, y, fontTotal, "Total: "+f.cfg.PDF.RenderComputed(bill.GrandTotal))

	if opts.PaymentQR {
		doc.Ops = append(doc.Ops, entity.DrawOp{
			Kind:  enum.DrawImage,
			Image: enum.ImageSlotPaymentQR,
			X:     pdfQRX,
			Y:     pdfQRY,
			W:     pdfQRSize,
			H:     pdfQRSize,
		})
	}
	return doc, nil
}

func pdfRow(item, qty, total string) string {
	return fmt.Sprintf("%-*s%-*s%*s", pdfItemWidth, item, pdfQtyWidth, qty, pdfTotalWidth, total)
}

func (f *ReceiptFormatter) taxCaption(bill *entity.Bill) string {
	return taxCaption(f.cfg.TaxLabel, bill.TaxRate)
}

// taxCaption renders e.g. "GST (5%)" from the rate a bill was charged.
func taxCaption(label string, rate decimal.Decimal) string {
	return fmt.Sprintf("%s (%s%%)", label, rate.Shift(2).String())
}
