package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItem is one entry on the fixed café menu.
type MenuItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Menu is the ordered, read-only price list loaded at startup.
// Item order is the order bills list their line items in.
type Menu struct {
	items []MenuItem
	index map[string]int
}

// NewMenu validates items and builds a menu. Names must be unique and
// non-empty and prices must be positive.
func NewMenu(items []MenuItem) (*Menu, error) {
	m := &Menu{
		items: make([]MenuItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("menu: item name is required")
		}
		if !it.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("menu: price of %q must be positive", name)
		}
		if _, dup := m.index[name]; dup {
			return nil, fmt.Errorf("menu: duplicate item %q", name)
		}
		m.index[name] = len(m.items)
		m.items = append(m.items, MenuItem{Name: name, UnitPrice: it.UnitPrice})
	}
	return m, nil
}

// Items returns a copy of the menu in definition order.
func (m *Menu) Items() []MenuItem {
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Lookup finds an item by name.
func (m *Menu) Lookup(name string) (MenuItem, bool) {
	i, ok := m.index[name]
	if !ok {
		return MenuItem{}, false
	}
	return m.items[i], true
}

// Len returns the number of menu items.
func (m *Menu) Len() int {
	return len(m.items)
}
