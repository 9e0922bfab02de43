package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2020-01-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2020-01-01" {
		t.Fatalf("expected 2020-01-01, got %q", d.String())
	}

	// vacío = sin fecha, no es error
	d, err = Parse("")
	if err != nil {
		t.Fatalf("empty date should not fail: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("empty date should be zero")
	}

	if _, err := Parse("01/02/2020"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := Parse("2020-13-40"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date     ISODate `json:"date"`
		NextDate ISODate `json:"next_date"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"date":"2024-03-01","next_date":""}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Date.String() != "2024-03-01" {
		t.Fatalf("date: got %q", p.Date.String())
	}
	if !p.NextDate.IsZero() {
		t.Fatalf("next_date vacío debe quedar en cero")
	}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"date":"2024-03-01","next_date":""}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}

func TestFormattedDate(t *testing.T) {
	if got := FormattedDate(New(2024, time.March, 1)); got != "1 March 2024" {
		t.Fatalf("got %q", got)
	}
	if got := FormattedDate(ISODate{}); got != "" {
		t.Fatalf("zero date should format empty, got %q", got)
	}
}

func TestAgeAt(t *testing.T) {
	today := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		birth ISODate
		want  string
	}{
		{New(2020, time.January, 1), "3 y. 2 m."},
		{New(2023, time.January, 1), "2 m."},
		{New(2022, time.March, 15), "1 y."},
		{New(2022, time.March, 20), "11 m."}, // aún no cumple el año
	}

	for _, c := range cases {
		if got := AgeAt(c.birth, today); got != c.want {
			t.Errorf("AgeAt(%s) = %q, want %q", c.birth, got, c.want)
		}
	}
}
