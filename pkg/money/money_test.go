package money

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sangkips/drip-billing/internal/domain/enum"
)

func TestStyleRender(t *testing.T) {
	tests := []struct {
		name   string
		style  Style
		amount string
		want   string
	}{
		{"plain whole", Style{Symbol: "₹", Format: enum.MoneyFormatPlain}, "330", "₹330"},
		{"plain fraction", Style{Symbol: "₹", Format: enum.MoneyFormatPlain}, "16.5", "₹16.5"},
		{"plain zero", Style{Symbol: "₹", Format: enum.MoneyFormatPlain}, "0", "₹0"},
		{"fixed whole", Style{Symbol: "Rs.", Format: enum.MoneyFormatFixed}, "330", "Rs.330.00"},
		{"fixed fraction", Style{Symbol: "₹", Format: enum.MoneyFormatFixed}, "346.5", "₹346.50"},
		{"no symbol", Style{Format: enum.MoneyFormatFixed}, "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.Render(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleRenderComputed(t *testing.T) {
	tests := []struct {
		name   string
		style  Style
		amount string
		want   string
	}{
		{"plain whole keeps one decimal", Style{Symbol: "₹"}, "210", "₹210.0"},
		{"plain whole from rounding", Style{Symbol: "₹"}, "10.00", "₹10.0"},
		{"plain zero", Style{Symbol: "₹"}, "0", "₹0.0"},
		{"plain fraction", Style{Symbol: "₹"}, "346.5", "₹346.5"},
		{"plain two places", Style{Symbol: "₹"}, "12.25", "₹12.25"},
		{"fixed unchanged", Style{Symbol: "Rs.", Format: enum.MoneyFormatFixed}, "210", "Rs.210.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.RenderComputed(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("RenderComputed() = %q, want %q", got, tt.want)
			}
		})
	}
}
