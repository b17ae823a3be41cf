package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/infrastructure/pdf"
	"github.com/sangkips/drip-billing/internal/infrastructure/storage"
	"github.com/sangkips/drip-billing/pkg/apperror"
)

// MaxQuantity is the largest quantity the till accepts for one item.
const MaxQuantity = 99

// QR image sizes in pixels.
const (
	pdfQRPixels   = 256
	savedQRPixels = 300
)

// PDFRenderer turns receipt directives into PDF bytes.
type PDFRenderer interface {
	Render(doc *entity.ReceiptDocument, images pdf.Images) ([]byte, error)
}

// QREncoder encodes text as a square PNG QR code.
type QREncoder interface {
	PNG(content string, size int) ([]byte, error)
}

// Selection is the till's working state: what has been picked and for whom.
type Selection struct {
	Quantities map[string]int  `json:"quantities"`
	Customer   entity.Customer `json:"customer"`
}

// Attachment is a rendered file ready to be saved or downloaded.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// TillDeps wires a till session. PDF and QR may be nil, which disables
// those outputs.
type TillDeps struct {
	Menu      *entity.Menu
	Billing   *BillingService
	Formatter *ReceiptFormatter
	Payment   *PaymentService
	Printer   *PrinterService
	Store     *storage.FileStore
	PDF       PDFRenderer
	QR        QREncoder
	LogoPath  string
}

// TillService is the single-operator billing session behind the API. It
// holds the current selection and the last generated bill.
type TillService struct {
	deps TillDeps

	mu         sync.Mutex
	quantities map[string]int
	customer   entity.Customer
	bill       *entity.Bill
}

// NewTillService creates an empty till session.
func NewTillService(deps TillDeps) *TillService {
	return &TillService{
		deps:       deps,
		quantities: map[string]int{},
	}
}

// Menu returns the menu the till sells from.
func (s *TillService) Menu() *entity.Menu {
	return s.deps.Menu
}

// SetSelection replaces the current quantities and customer. Every name
// must be on the menu and every quantity within 0..MaxQuantity; on any
// violation nothing changes.
func (s *TillService) SetSelection(quantities map[string]int, customer entity.Customer) error {
	var fieldErrors []apperror.FieldError
	next := make(map[string]int, len(quantities))
	for name, qty := range quantities {
		field := "quantities." + name
		if _, ok := s.deps.Menu.Lookup(name); !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: "is not on the menu"})
			continue
		}
		if qty < 0 || qty > MaxQuantity {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field,
				Message: fmt.Sprintf("must be between 0 and %d", MaxQuantity),
			})
			continue
		}
		if qty > 0 {
			next[name] = qty
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities = next
	s.customer = entity.Customer{
		Name:  strings.TrimSpace(customer.Name),
		Phone: strings.TrimSpace(customer.Phone),
	}
	return nil
}

// Selection returns a copy of the current selection with every menu item
// present, unselected ones at zero.
func (s *TillService) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantities := make(map[string]int, s.deps.Menu.Len())
	for _, item := range s.deps.Menu.Items() {
		quantities[item.Name] = s.quantities[item.Name]
	}
	return Selection{Quantities: quantities, Customer: s.customer}
}

// Generate computes a bill from the current selection and keeps it as the
// last bill, replacing any earlier one.
func (s *TillService) Generate() *entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.deps.Billing.Compute(s.deps.Menu, s.quantities, s.customer)
	s.bill = bill
	slog.Info("bill generated",
		"bill_number", bill.Number,
		"items", len(bill.LineItems),
		"grand_total", bill.GrandTotal.String(),
	)
	return bill
}

// CurrentBill returns the last generated bill.
func (s *TillService) CurrentBill() (*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bill == nil {
		return nil, apperror.ErrNoBill
	}
	return s.bill, nil
}

// Reset clears the selection, the customer and the last bill.
func (s *TillService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities = map[string]int{}
	s.customer = entity.Customer{}
	s.bill = nil
}

// RenderText renders the last bill as a plain-text receipt.
func (s *TillService) RenderText() (string, error) {
	bill, err := s.CurrentBill()
	if err != nil {
		return "", err
	}
	return s.deps.Formatter.RenderText(bill)
}

// SaveText writes the text receipt into the bills directory and returns
// the path written.
func (s *TillService) SaveText() (string, error) {
	text, err := s.RenderText()
	if err != nil {
		return "", err
	}
	path, err := s.deps.Store.SaveReceipt(text)
	if err != nil {
		return "", apperror.NewIOError("Failed to save bill", err)
	}
	slog.Info("bill saved", "path", path)
	return path, nil
}

// RenderPDF renders the last bill as a PDF. The logo is included when the
// configured file exists and is a supported image; the payment QR when QR
// output is enabled and the payee is valid.
func (s *TillService) RenderPDF() (*Attachment, error) {
	bill, err := s.CurrentBill()
	if err != nil {
		return nil, err
	}
	if s.deps.PDF == nil {
		return nil, apperror.NewCapabilityError("PDF")
	}

	images := pdf.Images{
		Logo:      s.loadLogo(),
		PaymentQR: s.pdfQR(bill),
	}
	doc, err := s.deps.Formatter.RenderPDF(bill, PDFOptions{
		Logo:      images.Logo != nil,
		PaymentQR: images.PaymentQR != nil,
	})
	if err != nil {
		return nil, err
	}
	data, err := s.deps.PDF.Render(doc, images)
	if err != nil {
		return nil, apperror.NewIOError("Failed to render PDF", err)
	}
	return &Attachment{
		Name:        fmt.Sprintf("bill_%d.pdf", bill.Number),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// SavePDF writes the PDF receipt into the bills directory under name, or
// under bill_<number>.pdf when name is empty, and returns the path written.
func (s *TillService) SavePDF(name string) (string, error) {
	att, err := s.RenderPDF()
	if err != nil {
		return "", err
	}
	return s.save(att, name, "Failed to save PDF")
}

// PaymentIntent builds the payment intent for the last bill.
func (s *TillService) PaymentIntent() (*PaymentIntent, error) {
	bill, err := s.CurrentBill()
	if err != nil {
		return nil, err
	}
	return s.deps.Payment.ForBill(bill)
}

// PaymentQR encodes the last bill's payment intent as a PNG.
func (s *TillService) PaymentQR() (*Attachment, error) {
	bill, err := s.CurrentBill()
	if err != nil {
		return nil, err
	}
	if s.deps.QR == nil {
		return nil, apperror.NewCapabilityError("QR")
	}
	intent, err := s.deps.Payment.ForBill(bill)
	if err != nil {
		return nil, err
	}
	data, err := s.deps.QR.PNG(intent.URI, savedQRPixels)
	if err != nil {
		return nil, apperror.NewIOError("Failed to generate QR code", err)
	}
	return &Attachment{
		Name:        fmt.Sprintf("upi_bill_%d.png", intent.BillNumber),
		ContentType: "image/png",
		Data:        data,
	}, nil
}

// SaveQR writes the payment QR into the bills directory under name, or
// under upi_bill_<number>.png when name is empty, and returns the path
// written.
func (s *TillService) SaveQR(name string) (string, error) {
	att, err := s.PaymentQR()
	if err != nil {
		return "", err
	}
	return s.save(att, name, "Failed to save QR code")
}

// Print sends the last bill to the thermal printer.
func (s *TillService) Print(ctx context.Context) error {
	bill, err := s.CurrentBill()
	if err != nil {
		return err
	}
	return s.deps.Printer.PrintBill(ctx, bill)
}

// PrinterStatus reports the thermal printer's state.
func (s *TillService) PrinterStatus(ctx context.Context) *PrinterStatus {
	return s.deps.Printer.GetStatus(ctx)
}

func (s *TillService) save(att *Attachment, name, failure string) (string, error) {
	if name == "" {
		name = att.Name
	}
	if err := validateFileName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.deps.Store.BillsDir(), name)
	if err := s.deps.Store.WriteFile(path, att.Data); err != nil {
		return "", apperror.NewIOError(failure, err)
	}
	slog.Info("file saved", "path", path, "bytes", len(att.Data))
	return path, nil
}

// validateFileName keeps saved files inside the bills directory.
func validateFileName(name string) error {
	if name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "path", Message: "must be a plain file name"},
		})
	}
	return nil
}

func (s *TillService) loadLogo() []byte {
	data, ok, err := s.deps.Store.ReadOptional(s.deps.LogoPath)
	if err != nil {
		slog.Warn("logo unreadable, rendering without it", "path", s.deps.LogoPath, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	if _, supported := pdf.ImageType(data); !supported {
		slog.Warn("logo is not a supported image, rendering without it", "path", s.deps.LogoPath)
		return nil
	}
	return data
}

// pdfQR returns the QR to embed in the PDF, or nil when QR output is off
// or the payee cannot receive money.
func (s *TillService) pdfQR(bill *entity.Bill) []byte {
	if s.deps.QR == nil {
		return nil
	}
	intent, err := s.deps.Payment.ForBill(bill)
	if err != nil {
		slog.Warn("payment QR omitted from PDF", "bill_number", bill.Number, "error", err)
		return nil
	}
	data, err := s.deps.QR.PNG(intent.URI, pdfQRPixels)
	if err != nil {
		slog.Warn("payment QR omitted from PDF", "bill_number", bill.Number, "error", err)
		return nil
	}
	return data
}
