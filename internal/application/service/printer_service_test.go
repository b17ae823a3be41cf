package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/domain/enum"
	"github.com/sangkips/drip-billing/pkg/apperror"
	"github.com/sangkips/drip-billing/pkg/money"
)

type fakePrinter struct {
	kind string
	jobs [][]byte
	err  error
}

func (p *fakePrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, append([]byte(nil), data...))
	return nil
}

func (p *fakePrinter) IsConnected(context.Context) bool { return p.err == nil }
func (p *fakePrinter) Type() string                     { return p.kind }

func newTestPrinterService(p *fakePrinter) *PrinterService {
	style := money.Style{Symbol: "Rs.", Format: enum.MoneyFormatFixed}
	return NewPrinterService(p, testMerchant(), style, "GST", 32)
}

func TestPrintBill(t *testing.T) {
	p := &fakePrinter{kind: "network"}
	svc := newTestPrinterService(p)
	bill := newTestBilling().Compute(cafeMenu(t), map[string]int{"Latte": 2, "Sandwich": 1}, entity.Customer{Name: "Asha"})

	if err := svc.PrintBill(context.Background(), bill); err != nil {
		t.Fatalf("PrintBill() error = %v", err)
	}
	if len(p.jobs) != 1 {
		t.Fatalf("printer got %d jobs, want 1", len(p.jobs))
	}

	job := string(p.jobs[0])
	for _, want := range []string{
		"Digital Drip Café",
		"12345",
		"Customer:",
		"Latte                2 Rs.240.00",
		"  @ Rs.120.00 each",
		"GST (5%):",
		"Rs.346.50",
	} {
		if !strings.Contains(job, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
	if strings.Contains(job, "Phone:") {
		t.Error("receipt should not print an empty phone")
	}
	if !bytes.HasSuffix(p.jobs[0], []byte{0x1D, 'V', 0x01}) {
		t.Error("receipt should end with a partial cut")
	}
}

func TestPrintBillErrors(t *testing.T) {
	bill := newTestBilling().Compute(cafeMenu(t), map[string]int{"Latte": 1}, entity.Customer{})

	tests := []struct {
		name    string
		printer *fakePrinter
		bill    *entity.Bill
		kind    apperror.Kind
	}{
		{"no bill", &fakePrinter{kind: "usb"}, nil, apperror.KindPrecondition},
		{"no printer configured", &fakePrinter{kind: "none"}, bill, apperror.KindCapability},
		{"printer offline", &fakePrinter{kind: "usb", err: errors.New("device busy")}, bill, apperror.KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestPrinterService(tt.printer).PrintBill(context.Background(), tt.bill)
			if !apperror.IsKind(err, tt.kind) {
				t.Errorf("PrintBill() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestPrinterStatus(t *testing.T) {
	status := newTestPrinterService(&fakePrinter{kind: "none"}).GetStatus(context.Background())
	if status.Configured || status.Type != "none" || status.Width != 32 {
		t.Errorf("status = %+v", status)
	}
}
