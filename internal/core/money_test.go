package core

import (
	"errors"
	"math"
	"testing"
)

func TestFormatAmountInput(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"0", "0"},
		{"1234567", "1,234,567"},
		{"1234567.891", "1,234,567.89"}, // third fractional digit truncated
		{"1000", "1,000"},
		{"100", "100"},
		{"12.5", "12.5"},
		{"12.", "12."},
		{".5", ".5"},
		{"₦1,234.56", "1,234.56"},
		{"abc12x3.4y5", "123.45"},
		{"1.2.3", "1.23"}, // later dots join the fractional stream
		{"12.999", "12.99"},
	}
	for _, tc := range cases {
		if got := FormatAmountInput(tc.in); got != tc.out {
			t.Fatalf("FormatAmountInput(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		kobo int64
		ok   bool
	}{
		{"1", 100, true},
		{"1.23", 123, true},
		{"1,234,567.89", 123456789, true},
		{"0.01", 1, true},
		{"0.5", 50, true},
		{"12.999", 1299, true}, // truncated, never rounded
		{" 2.50 ", 250, true},
		{".5", 50, true},
		{"5.", 500, true},
		{"", 0, false},
		{".", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Kobo != tc.kobo {
				t.Fatalf("ParseAmount(%q) = %d, %v; want %d", tc.in, got.Kobo, err, tc.kobo)
			}
		} else {
			if err == nil {
				t.Fatalf("ParseAmount(%q) expected error", tc.in)
			}
		}
	}
}

func TestParseAmountOverflowBoundary(t *testing.T) {
	// Largest representable amount is math.MaxInt64 kobo.
	got, err := ParseAmount("92233720368547758.07")
	if err != nil || got.Kobo != math.MaxInt64 {
		t.Fatalf("max amount = %d, %v; want %d", got.Kobo, err, int64(math.MaxInt64))
	}

	for _, in := range []string{
		"92233720368547758.08",
		"92233720368547758.99",
		"92233720368547759",
		"99999999999999999999",
	} {
		got, err := ParseAmount(in)
		if err == nil {
			t.Fatalf("ParseAmount(%q) = %d, expected error", in, got.Kobo)
		}
		if got.Kobo < 0 {
			t.Fatalf("ParseAmount(%q) produced negative %d", in, got.Kobo)
		}
	}
}

func TestParseAmountSentinels(t *testing.T) {
	for _, in := range []string{"", "   ", ","} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrEmptyAmount) {
			t.Fatalf("ParseAmount(%q) = %v, want ErrEmptyAmount", in, err)
		}
	}
	for _, in := range []string{"abc", "1.2.3", "-1"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestParseFormatsItsOwnOutput(t *testing.T) {
	// parseAmount(formatAmountInput(x)) must recover the cleaned value.
	for _, raw := range []string{"1234567.891", "0.5", "999999", "12.3", "7.00"} {
		formatted := FormatAmountInput(raw)
		fromFormatted, err := ParseAmount(formatted)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", formatted, err)
		}
		fromRaw, err := ParseAmount(FormatAmountInput(raw))
		if err != nil {
			t.Fatalf("ParseAmount raw %q: %v", raw, err)
		}
		if fromFormatted != fromRaw {
			t.Fatalf("round trip mismatch for %q: %v vs %v", raw, fromFormatted, fromRaw)
		}
	}
}

func TestFormatAmountDisplay(t *testing.T) {
	cases := []struct {
		kobo   int64
		masked bool
		out    string
	}{
		{0, false, "₦0.00"},
		{123456789, false, "₦1,234,567.89"},
		{50000000, false, "₦500,000.00"},
		{-35000000, false, "-₦350,000.00"},
		{5, false, "₦0.05"},
		{123456789, true, Masked},
		{0, true, Masked},
	}
	for _, tc := range cases {
		if got := FormatAmountDisplay(Money{Kobo: tc.kobo}, tc.masked); got != tc.out {
			t.Fatalf("FormatAmountDisplay(%d, %v) = %q, want %q", tc.kobo, tc.masked, got, tc.out)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		kobo int64
		out  string
	}{
		{500, "5"},
		{550, "5.5"},
		{555, "5.55"},
		{50000000, "500000"},
		{5, "0.05"},
		{0, "0"},
		{-550, "-5.5"},
	}
	for _, tc := range cases {
		if got := (Money{Kobo: tc.kobo}).String(); got != tc.out {
			t.Fatalf("Money{%d}.String() = %q, want %q", tc.kobo, got, tc.out)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	for _, kobo := range []int64{0, 5, 500, 555, 123456789} {
		m := Money{Kobo: kobo}
		data, err := m.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %d: %v", kobo, err)
		}
		var back Money
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != m {
			t.Fatalf("round trip %d -> %s -> %d", kobo, data, back.Kobo)
		}
	}

	var m Money
	if err := m.UnmarshalJSON([]byte(`"nope"`)); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
