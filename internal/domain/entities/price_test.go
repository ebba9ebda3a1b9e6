package entities

import (
	"encoding/json"
	"testing"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Price
	}{
		{name: "number", body: `{"price":1200.5}`, want: "1200.5"},
		{name: "integer", body: `{"price":50}`, want: "50"},
		{name: "numeric string", body: `{"price":"50"}`, want: PriceFromString("50")},
		{name: "free text", body: `{"price":"call us"}`, want: PriceFromString("call us")},
		{name: "null", body: `{"price":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				Price Price `json:"price"`
			}
			if err := json.Unmarshal([]byte(tc.body), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Price != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, v.Price)
			}
		})
	}

	t.Run("object is rejected", func(t *testing.T) {
		var p Price
		if err := json.Unmarshal([]byte(`{"amount":1}`), &p); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPrice_Float(t *testing.T) {
	cases := map[Price]float64{
		"":        0,
		"100":     100,
		" 75.25 ": 75.25,
		"abc":     0,
		"NaN":     0,
		"Inf":     0,
		"-10":     -10,
		`"50"`:    50,
		`"x"`:     0,
	}
	for p, want := range cases {
		if got := p.Float(); got != want {
			t.Fatalf("Price(%q).Float() = %v, want %v", p, got, want)
		}
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	b := Booking{ID: "bk-1", Price: "50"}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["price"] != 50.0 {
		t.Fatalf("expected numeric price, got %#v", decoded["price"])
	}

	raw, _ = json.Marshal(Booking{ID: "bk-2", Price: PriceFromString("call us")})
	decoded = nil
	_ = json.Unmarshal(raw, &decoded)
	if decoded["price"] != "call us" {
		t.Fatalf("expected string price, got %#v", decoded["price"])
	}

	raw, _ = json.Marshal(Booking{ID: "bk-3"})
	decoded = nil
	_ = json.Unmarshal(raw, &decoded)
	if _, ok := decoded["price"]; ok {
		t.Fatalf("expected missing price to be omitted: %s", raw)
	}
}

func TestPrice_KeepsSubmittedForm(t *testing.T) {
	cases := map[string]string{
		`{"price":"50"}`:      `{"price":"50"}`,
		`{"price":50}`:        `{"price":50}`,
		`{"price":"call us"}`: `{"price":"call us"}`,
		`{"price":" 7.5 "}`:   `{"price":" 7.5 "}`,
	}
	for body, want := range cases {
		var v struct {
			Price Price `json:"price"`
		}
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != want {
			t.Fatalf("expected %s, got %s", want, raw)
		}
	}

	p := PriceFromString("50")
	if !p.IsQuoted() || p.Text() != "50" || p.Float() != 50 {
		t.Fatalf("unexpected quoted price: %q", p)
	}
	if Price("50").IsQuoted() || Price("50").Text() != "50" {
		t.Fatalf("numeric price must not be quoted")
	}
}

func TestBooking_Title(t *testing.T) {
	if got := (Booking{ServiceTitle: "Stage", ServiceName: "Old"}).Title(); got != "Stage" {
		t.Fatalf("expected Stage, got %q", got)
	}
	if got := (Booking{ServiceName: "Old"}).Title(); got != "Old" {
		t.Fatalf("expected Old, got %q", got)
	}
}
