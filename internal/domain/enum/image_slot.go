package enum

import "encoding/json"

// ImageSlot names the images a PDF receipt can carry.
type ImageSlot int

const (
	ImageSlotNone      ImageSlot = 0
	ImageSlotLogo      ImageSlot = 1
	ImageSlotPaymentQR ImageSlot = 2
)

func (s ImageSlot) String() string {
	names := [...]string{"None", "Logo", "PaymentQR"}
	if int(s) < 0 || int(s) >= len(names) {
		return "None"
	}
	return names[s]
}

func (s ImageSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
