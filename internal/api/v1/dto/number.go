package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Number is a numeric field the backend sometimes serialises as a string
// (raw aggregate counts, metadata values entered by hand). Values that are
// not numbers decode as zero so the caller's default applies.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	var f float64
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(string(bytes.TrimSpace([]byte(s))), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 { return float64(n) }

func (n Number) Int() int { return int(n) }

// Text is a free-form metadata string. Numbers and booleans keep their
// literal form; objects, arrays and null decode as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '{', '[', 'n':
	default:
		*t = Text(data)
	}
	return nil
}

// Or returns the text, or fallback when t is nil or empty.
func (t *Text) Or(fallback string) string {
	if t == nil || *t == "" {
		return fallback
	}
	return string(*t)
}
