package entity

// Merchant is the static café identity printed on receipts and encoded
// into payment QR codes.
type Merchant struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines"`
	Payee        Payee    `json:"payee"`
}

// Payee is the mobile-payment identity a QR code pays into.
type Payee struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Note     string `json:"note"`
	Scheme   string `json:"scheme"`
	Currency string `json:"currency"`
}
