package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is a booking price kept exactly as the client submitted it: a JSON
// number, a string, or nothing at all. A JSON number is held as its literal
// text ("50"). A JSON string is held in quoted form (`"50"`) so it is written
// back as a string; build one with PriceFromString.
//
// Aggregations read it through Float, which treats a missing or non-numeric
// price as 0. That "missing price = free" rule is intentional.
type Price string

func PriceFromString(s string) Price {
	return Price(strconv.Quote(s))
}

func PriceFromFloat(v float64) Price {
	return Price(strconv.FormatFloat(v, 'f', -1, 64))
}

// IsQuoted reports whether the price was submitted as a string.
func (p Price) IsQuoted() bool {
	_, ok := p.unquote()
	return ok
}

// Text is the price without its string quoting.
func (p Price) Text() string {
	if s, ok := p.unquote(); ok {
		return s
	}
	return string(p)
}

func (p Price) unquote() (string, bool) {
	if len(p) < 2 || p[0] != '"' {
		return "", false
	}
	s, err := strconv.Unquote(string(p))
	if err != nil {
		return "", false
	}
	return s, true
}

func (p Price) Float() float64 {
	v, ok := p.parse()
	if !ok {
		return 0
	}
	return v
}

func (p Price) IsNumeric() bool {
	_, ok := p.parse()
	return ok
}

func (p Price) parse() (float64, bool) {
	s := strings.TrimSpace(p.Text())
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceFromString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Price(n.String())
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("null"), nil
	}
	if s, ok := p.unquote(); ok {
		return json.Marshal(s)
	}
	if v, ok := p.parse(); ok {
		return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
	}
	return json.Marshal(string(p))
}
