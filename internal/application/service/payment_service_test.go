package service

import (
	"testing"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/pkg/apperror"
)

func TestPaymentURI(t *testing.T) {
	payee := entity.Payee{
		Address:  "cafe@upi",
		Name:     "Digital Drip Café",
		Note:     "Bill",
		Currency: "INR",
	}

	tests := []struct {
		name   string
		scheme string
		escape bool
		amount string
		want   string
	}{
		{
			name:   "verbatim fields",
			scheme: "scheme",
			amount: "262.5",
			want:   "scheme://pay?pa=cafe@upi&pn=Digital Drip Café&am=262.5&cu=INR&tn=Bill",
		},
		{
			name:   "default scheme",
			amount: "346.5",
			want:   "upi://pay?pa=cafe@upi&pn=Digital Drip Café&am=346.5&cu=INR&tn=Bill",
		},
		{
			name:   "whole amount keeps one decimal",
			scheme: "upi",
			amount: "210",
			want:   "upi://pay?pa=cafe@upi&pn=Digital Drip Café&am=210.0&cu=INR&tn=Bill",
		},
		{
			name:   "escaped fields",
			scheme: "upi",
			escape: true,
			amount: "262.5",
			want:   "upi://pay?pa=cafe%40upi&pn=Digital%20Drip%20Caf%C3%A9&am=262.5&cu=INR&tn=Bill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payee
			p.Scheme = tt.scheme
			got, err := NewPaymentService(p, tt.escape).URI(dec(tt.amount))
			if err != nil {
				t.Fatalf("URI() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("URI() = %q\nwant     %q", got, tt.want)
			}
		})
	}
}

func TestPaymentRejectsPlaceholderPayee(t *testing.T) {
	for _, addr := range []string{"", "   ", "enter-your-vpa@upi", "your-vpa@okbank"} {
		svc := NewPaymentService(entity.Payee{Address: addr, Name: "Cafe"}, false)
		_, err := svc.URI(dec("10"))
		if !apperror.IsKind(err, apperror.KindConfiguration) {
			t.Errorf("address %q: want configuration error, got %v", addr, err)
		}
	}
}

func TestPaymentForBill(t *testing.T) {
	svc := NewPaymentService(testMerchant().Payee, false)

	if _, err := svc.ForBill(nil); err != apperror.ErrNoBill {
		t.Fatalf("ForBill(nil) error = %v, want ErrNoBill", err)
	}

	bill := newTestBilling().Compute(cafeMenu(t), map[string]int{"Latte": 2, "Sandwich": 1}, entity.Customer{})
	intent, err := svc.ForBill(bill)
	if err != nil {
		t.Fatalf("ForBill() error = %v", err)
	}
	if intent.URI != "upi://pay?pa=cafe@upi&pn=Digital Drip Café&am=346.5&cu=INR&tn=Bill" {
		t.Errorf("uri = %q", intent.URI)
	}
	if intent.BillNumber != 12345 || !intent.Amount.Equal(dec("346.5")) {
		t.Errorf("intent = %+v", intent)
	}
}
