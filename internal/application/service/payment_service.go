package service

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/pkg/apperror"
	"github.com/sangkips/drip-billing/pkg/money"
)

// placeholderPayees are fragments of the sample addresses shipped in
// example configs. A payee containing one of them cannot receive money.
var placeholderPayees = []string{"enter-your-vpa", "your-vpa"}

// PaymentIntent is the payload handed to the QR encoder.
type PaymentIntent struct {
	URI        string          `json:"uri"`
	BillNumber int             `json:"bill_number"`
	Payee      string          `json:"payee"`
	PayeeName  string          `json:"payee_name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Note       string          `json:"note"`
}

// PaymentService builds payment-intent URIs for bills.
type PaymentService struct {
	payee  entity.Payee
	escape bool
}

// NewPaymentService creates a payment service for payee. When escapeFields
// is false every value is copied into the URI verbatim, which is what
// existing scanners were tested against; set it to percent-encode values.
func NewPaymentService(payee entity.Payee, escapeFields bool) *PaymentService {
	if payee.Scheme == "" {
		payee.Scheme = "upi"
	}
	if payee.Currency == "" {
		payee.Currency = "INR"
	}
	return &PaymentService{payee: payee, escape: escapeFields}
}

// Validate reports a configuration error when the payee address is missing
// or still a placeholder.
func (s *PaymentService) Validate() error {
	addr := strings.TrimSpace(s.payee.Address)
	if addr == "" {
		return apperror.NewConfigurationError("Payment payee address is not configured")
	}
	for _, p := range placeholderPayees {
		if strings.Contains(addr, p) {
			return apperror.NewConfigurationError("Payment payee address is a placeholder; set a real address before generating QR codes")
		}
	}
	return nil
}

// URI renders scheme://pay?pa=..&pn=..&am=..&cu=..&tn=.. for amount.
// Field order and key names are fixed.
func (s *PaymentService) URI(amount decimal.Decimal) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(s.payee.Scheme)
	b.WriteString("://pay?pa=")
	b.WriteString(s.value(s.payee.Address))
	b.WriteString("&pn=")
	b.WriteString(s.value(s.payee.Name))
	b.WriteString("&am=")
	b.WriteString(money.Computed(amount))
	b.WriteString("&cu=")
	b.WriteString(s.value(s.payee.Currency))
	b.WriteString("&tn=")
	b.WriteString(s.value(s.payee.Note))
	return b.String(), nil
}

// ForBill builds the payment intent for the bill's grand total.
func (s *PaymentService) ForBill(bill *entity.Bill) (*PaymentIntent, error) {
	if bill == nil {
		return nil, apperror.ErrNoBill
	}
	uri, err := s.URI(bill.GrandTotal)
	if err != nil {
		return nil, err
	}
	return &PaymentIntent{
		URI:        uri,
		BillNumber: bill.Number,
		Payee:      s.payee.Address,
		PayeeName:  s.payee.Name,
		Amount:     bill.GrandTotal,
		Currency:   s.payee.Currency,
		Note:       s.payee.Note,
	}, nil
}

func (s *PaymentService) value(v string) string {
	if !s.escape {
		return v
	}
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
