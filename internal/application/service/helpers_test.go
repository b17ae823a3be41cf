package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/entity"
)

var testTime = time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)

func cafeMenu(t *testing.T) *entity.Menu {
	t.Helper()
	menu, err := entity.NewMenu([]entity.MenuItem{
		{Name: "Latte", UnitPrice: decimal.NewFromInt(120)},
		{Name: "Espresso", UnitPrice: decimal.NewFromInt(100)},
		{Name: "Cappuccino", UnitPrice: decimal.NewFromInt(150)},
		{Name: "Cold Coffee", UnitPrice: decimal.NewFromInt(130)},
		{Name: "Sandwich", UnitPrice: decimal.NewFromInt(90)},
		{Name: "Burger", UnitPrice: decimal.NewFromInt(120)},
		{Name: "Momos", UnitPrice: decimal.NewFromInt(80)},
		{Name: "French Fries", UnitPrice: decimal.NewFromInt(70)},
	})
	if err != nil {
		t.Fatalf("build menu: %v", err)
	}
	return menu
}

func testMerchant() entity.Merchant {
	return entity.Merchant{
		Name: "Digital Drip Café",
		AddressLines: []string{
			"Ground Floor, Tech Innovation Hub",
			"Near Central Library",
		},
		Payee: entity.Payee{
			Address:  "cafe@upi",
			Name:     "Digital Drip Café",
			Note:     "Bill",
			Scheme:   "upi",
			Currency: "INR",
		},
	}
}

// newTestBilling numbers every bill 12345 and stamps it with testTime.
func newTestBilling() *BillingService {
	return NewBillingService(DefaultTaxRate, 10000, 99999,
		WithClock(func() time.Time { return testTime }),
		WithRandom(func(int) int { return 2345 }),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
