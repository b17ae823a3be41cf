package entity

import "github.com/sangkips/drip-billing/internal/domain/enum"

// Font is a PDF font selection. Family is one of the core families
// (Helvetica, Courier); the renderer maps it onto whatever fonts it has.
type Font struct {
	Family string  `json:"family"`
	Style  string  `json:"style,omitempty"`
	Size   float64 `json:"size"`
}

// DrawOp is a single PDF draw directive.
//
// Coordinates are in points with the origin at the bottom-left corner of
// the page, so Y decreases as content is appended. For DrawText, X is the
// left edge of the text; for DrawTextRight it is the right edge. Y is the
// text baseline. For DrawImage, (X, Y) is the bottom-left corner of the
// image box.
type DrawOp struct {
	Kind  enum.DrawKind  `json:"kind"`
	X     float64        `json:"x,omitempty"`
	Y     float64        `json:"y,omitempty"`
	Font  Font           `json:"font"`
	Text  string         `json:"text,omitempty"`
	Image enum.ImageSlot `json:"image,omitempty"`
	W     float64        `json:"w,omitempty"`
	H     float64        `json:"h,omitempty"`
}

// PageLayout describes the page a receipt is laid out on.
type PageLayout struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	TopMargin    float64 `json:"top_margin"`
	BottomMargin float64 `json:"bottom_margin"`
}

// A4 in points, with the margins used for receipts.
var A4Receipt = PageLayout{
	Width:        595.2756,
	Height:       841.8898,
	TopMargin:    50,
	BottomMargin: 80,
}

// ReceiptDocument is a bill laid out for PDF drawing. It is not a stored
// record; it is composed from the current bill at render time.
type ReceiptDocument struct {
	BillNumber int        `json:"bill_number"`
	Layout     PageLayout `json:"layout"`
	Ops        []DrawOp   `json:"ops"`
}

// Pages counts the pages the document spans.
func (d *ReceiptDocument) Pages() int {
	pages := 1
	for _, op := range d.Ops {
		if op.Kind == enum.DrawPageBreak {
			pages++
		}
	}
	return pages
}
