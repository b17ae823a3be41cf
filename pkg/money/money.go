// Package money renders decimal amounts for receipts.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/enum"
)

// Style is the currency presentation used by one output medium.
type Style struct {
	Symbol string
	Format enum.MoneyFormat
}

// Render renders amount with the style's symbol prefix.
func (s Style) Render(amount decimal.Decimal) string {
	return s.Symbol + Amount(amount, s.Format)
}

// RenderComputed renders a rounded result such as tax or grand total. In
// plain format a whole value keeps one decimal ("₹210.0").
func (s Style) RenderComputed(amount decimal.Decimal) string {
	if s.Format == enum.MoneyFormatFixed {
		return s.Render(amount)
	}
	return s.Symbol + Computed(amount)
}

// Amount renders amount without a symbol. Plain keeps the shortest form
// ("330", "16.5"); fixed always shows two decimals ("330.00").
func Amount(amount decimal.Decimal, format enum.MoneyFormat) string {
	if format == enum.MoneyFormatFixed {
		return amount.StringFixed(2)
	}
	return amount.String()
}

// Computed renders a rounded result in its shortest form but with at
// least one decimal: "210.0", "16.5", "346.25".
func Computed(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return amount.StringFixed(1)
	}
	return amount.String()
}
