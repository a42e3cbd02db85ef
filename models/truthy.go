package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Truthy is a boolean decoded from an arbitrary JSON value using
// JavaScript truthiness: null, false, 0, "" and NaN are false,
// everything else (including [] and {}) is true.
type Truthy bool

// UnmarshalJSON implements json.Unmarshaler.
func (t *Truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = false
		return nil
	}

	switch data[0] {
	case 'n', 'f':
		*t = false
	case 't', '[', '{':
		*t = true
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = s != ""
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*t = f != 0
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Truthy) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(t))
}
