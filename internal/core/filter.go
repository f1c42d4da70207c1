package core

const (
	FilterAll    FilterMode = "all"
	FilterCredit FilterMode = "credit"
	FilterDebit  FilterMode = "debit"
)

// FilterMode selects which transaction types a view shows. Filtering is a
// view-time concept only; the persisted ledger is always the full set.
type FilterMode string

// ParseFilterMode maps arbitrary input to a mode, defaulting to all.
func ParseFilterMode(s string) FilterMode {
	switch FilterMode(s) {
	case FilterCredit:
		return FilterCredit
	case FilterDebit:
		return FilterDebit
	default:
		return FilterAll
	}
}

// Filter returns the subsequence of the ledger matching the mode,
// preserving relative order. The result is always a fresh slice; the input
// is never mutated.
func Filter(ledger Ledger, mode FilterMode) Ledger {
	out := make(Ledger, 0, len(ledger))
	for _, t := range ledger {
		if mode == FilterAll || FilterMode(t.Type) == mode {
			out = append(out, t)
		}
	}
	return out
}
