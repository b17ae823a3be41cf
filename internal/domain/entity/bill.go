package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer holds the optional details typed in at the till.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsEmpty reports whether neither name nor phone was given.
func (c Customer) IsEmpty() bool {
	return c.Name == "" && c.Phone == ""
}

// LineItem is a menu item that appears on a bill with quantity > 0.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Bill is the computed record behind one receipt.
//
// Number is a display label only; it is random and never checked for
// collisions. LineItems follow menu order.
type Bill struct {
	Number     int             `json:"bill_number"`
	Timestamp  time.Time       `json:"timestamp"`
	Customer   Customer        `json:"customer"`
	LineItems  []LineItem      `json:"line_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// BillTimeLayout is how bill timestamps are printed on receipts.
const BillTimeLayout = "2006-01-02 15:04:05"

// FormattedTime returns the receipt representation of the bill timestamp.
func (b *Bill) FormattedTime() string {
	return b.Timestamp.Format(BillTimeLayout)
}
