package enum

import "encoding/json"

// DrawKind is the type of a single PDF draw directive.
type DrawKind int

const (
	DrawText      DrawKind = 0
	DrawTextRight DrawKind = 1
	DrawImage     DrawKind = 2
	DrawPageBreak DrawKind = 3
)

func (k DrawKind) String() string {
	return [...]string{"Text", "TextRight", "Image", "PageBreak"}[k]
}

func (k DrawKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
