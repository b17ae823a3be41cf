package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MoneyFormat selects how an output medium renders currency amounts.
type MoneyFormat int

const (
	// MoneyFormatPlain prints the shortest decimal form: 330, 16.5.
	MoneyFormatPlain MoneyFormat = 0
	// MoneyFormatFixed always prints two decimals: 330.00, 16.50.
	MoneyFormatFixed MoneyFormat = 1
)

func (f MoneyFormat) String() string {
	names := [...]string{"Plain", "Fixed"}
	if int(f) < 0 || int(f) >= len(names) {
		return "Plain"
	}
	return names[f]
}

// ParseMoneyFormat accepts "plain" or "fixed" in any case.
func ParseMoneyFormat(s string) (MoneyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "":
		return MoneyFormatPlain, nil
	case "fixed":
		return MoneyFormatFixed, nil
	default:
		return MoneyFormatPlain, fmt.Errorf("unknown money format %q (use plain or fixed)", s)
	}
}

func (f MoneyFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *MoneyFormat) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*f = MoneyFormat(i)
		return nil
	}
	parsed, err := ParseMoneyFormat(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
