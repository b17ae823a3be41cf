package request

import "github.com/sangkips/drip-billing/internal/domain/entity"

// SelectionRequest replaces the till selection. Quantities are keyed by
// menu item name; items left out count as zero.
type SelectionRequest struct {
	Quantities map[string]int `json:"quantities"`
	Customer   CustomerInput  `json:"customer"`
}

// CustomerInput holds the optional customer details.
type CustomerInput struct {
	Name  string `json:"name" binding:"max=100"`
	Phone string `json:"phone" binding:"max=20"`
}

// ToEntity converts the input to a domain customer.
func (in CustomerInput) ToEntity() entity.Customer {
	return entity.Customer{Name: in.Name, Phone: in.Phone}
}

// SaveFileRequest names the file to save in the bills directory. An empty
// path uses the default name for the output.
type SaveFileRequest struct {
	Path string `json:"path" binding:"omitempty,max=255"`
}
