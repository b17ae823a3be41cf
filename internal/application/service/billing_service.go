package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/entity"
)

// DefaultTaxRate is the flat surcharge applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.05")

// BillingService turns menu quantities into bills.
type BillingService struct {
	rate      decimal.Decimal
	numberMin int
	numberMax int
	now       func() time.Time
	intN      func(n int) int
}

// BillingOption customizes a BillingService.
type BillingOption func(*BillingService)

// WithClock replaces the wall clock used for bill timestamps.
func WithClock(now func() time.Time) BillingOption {
	return func(s *BillingService) { s.now = now }
}

// WithRandom replaces the source of bill numbers. intN must return a value
// in [0, n).
func WithRandom(intN func(n int) int) BillingOption {
	return func(s *BillingService) { s.intN = intN }
}

// NewBillingService creates a billing service charging rate on every bill
// and numbering bills in [numberMin, numberMax].
func NewBillingService(rate decimal.Decimal, numberMin, numberMax int, opts ...BillingOption) *BillingService {
	if numberMax < numberMin {
		numberMax = numberMin
	}
	s := &BillingService{
		rate:      rate,
		numberMin: numberMin,
		numberMax: numberMax,
		now:       time.Now,
		intN:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the tax rate applied to bills.
func (s *BillingService) Rate() decimal.Decimal {
	return s.rate
}

// Compute builds a bill from the quantities in selections. Items are taken
// in menu order; anything with quantity <= 0 or not on the menu is left
// out. Tax is charged on the unrounded subtotal and rounded to two places,
// and the grand total is rounded again after adding tax.
func (s *BillingService) Compute(menu *entity.Menu, selections map[string]int, customer entity.Customer) *entity.Bill {
	bill := &entity.Bill{
		Number:    s.numberMin + s.intN(s.numberMax-s.numberMin+1),
		Timestamp: s.now(),
		Customer: entity.Customer{
			Name:  strings.TrimSpace(customer.Name),
			Phone: strings.TrimSpace(customer.Phone),
		},
		LineItems: []entity.LineItem{},
		Subtotal:  decimal.Zero,
		TaxRate:   s.rate,
	}

	for _, item := range menu.Items() {
		qty := selections[item.Name]
		if qty <= 0 {
			continue
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		bill.LineItems = append(bill.LineItems, entity.LineItem{
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
		bill.Subtotal = bill.Subtotal.Add(lineTotal)
	}

	bill.Tax = bill.Subtotal.Mul(s.rate).Round(2)
	bill.GrandTotal = bill.Subtotal.Add(bill.Tax).Round(2)
	return bill
}
