package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary or numeric field that tolerates sloppy client
// input. JSON numbers and numeric strings decode normally; null, empty
// strings and garbage decode to 0 so aggregation never trips on bad data.
// It always marshals back as a plain JSON number.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// Float returns the amount as a plain float64.
func (a Amount) Float() float64 { return float64(a) }
