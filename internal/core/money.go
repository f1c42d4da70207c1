// Package core provides the transaction domain model along with amount
// parsing and formatting.
//
// Money is held in kobo (minor units) so that aggregation is exact integer
// arithmetic; floating point never enters a sum.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Masked is rendered in place of any amount while amounts are hidden.
const Masked = "••••••"

// ParseAmount converts entry text (possibly comma-grouped, as produced by
// FormatAmountInput) to Money.
//
// Grouping commas are stripped first. An empty string (after stripping)
// fails with ErrEmptyAmount. Anything else that is not a plain
// non-negative decimal, digits with at most one decimal point, fails with
// ErrInvalidAmount; either way the submission must be blocked.
//
// Fractional digits beyond the second are truncated, not rounded. That
// mirrors the entry formatter, which never lets a third fractional digit
// through in the first place.
func ParseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return Money{}, ErrEmptyAmount
	}
	kobo, err := parseDecimalKobo(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Kobo: kobo}, nil
}

// parseDecimalKobo parses an unsigned plain decimal into kobo, truncating
// past two fractional digits.
func parseDecimalKobo(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidAmount
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		// A second decimal point is ambiguous; reject rather than guess.
		return 0, ErrInvalidAmount
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
		}
	}
	// iv*100+frac must stay within int64.
	const maxSafe = math.MaxInt64 / 100
	if iv > maxSafe || (iv == maxSafe && frac > math.MaxInt64%100) {
		return 0, ErrInvalidAmount
	}
	return iv*100 + frac, nil
}

// FormatAmountInput normalizes raw entry text into the grouped form shown
// in the amount field. Every character that is not a digit or a decimal
// point is dropped; the first decimal point splits integer from fraction
// and any later ones simply join the fractional digit stream. The integer
// part is comma-grouped and the fraction is truncated to two digits. A
// missing fraction stays missing; no ".00" is forced.
//
//	FormatAmountInput("1234567.891") == "1,234,567.89"
func FormatAmountInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	intPart, rest, hasDot := strings.Cut(cleaned, ".")
	grouped := groupThousands(intPart)
	if !hasDot {
		return grouped
	}
	frac := strings.ReplaceAll(rest, ".", "")
	if len(frac) > 2 {
		frac = frac[:2]
	}
	return grouped + "." + frac
}

// FormatAmountDisplay renders an amount the way the summary cards and list
// rows show it: currency glyph, comma grouping, always two decimals. When
// masked, a fixed placeholder replaces the digits entirely.
func FormatAmountDisplay(m Money, masked bool) string {
	if masked {
		return Masked
	}
	kobo := m.Kobo
	neg := kobo < 0
	if neg {
		kobo = -kobo
	}
	s := "₦" + groupThousands(strconv.FormatInt(kobo/100, 10)) + fmt.Sprintf(".%02d", kobo%100)
	if neg {
		return "-" + s
	}
	return s
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// String renders the magnitude as a minimal plain decimal: no grouping, no
// trailing zeros, no forced fraction. This is the raw stored form used by
// the persisted blob and the CSV export.
func (m Money) String() string {
	kobo := m.Kobo
	neg := kobo < 0
	if neg {
		kobo = -kobo
	}
	s := strconv.FormatInt(kobo/100, 10)
	switch rem := kobo % 100; {
	case rem == 0:
	case rem%10 == 0:
		s += "." + strconv.FormatInt(rem/10, 10)
	default:
		s += fmt.Sprintf(".%02d", rem)
	}
	if neg {
		return "-" + s
	}
	return s
}

// MarshalJSON writes the amount as a plain JSON number so the persisted
// blob stays compatible with ledgers written by earlier versions, which
// stored amounts as bare numbers.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	kobo, err := parseDecimalKobo(s)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	if neg {
		kobo = -kobo
	}
	m.Kobo = kobo
	return nil
}
