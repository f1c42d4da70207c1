package core

// Summary holds the derived totals for a ledger snapshot. All sums are
// integer kobo, so repeated aggregation never drifts.
type Summary struct {
	TotalInflow  Money
	TotalOutflow Money
	NetBalance   Money
}

// Aggregate computes inflow, outflow and net balance over the given
// transactions. An empty ledger yields all zeros; the net balance may be
// negative.
func Aggregate(ledger Ledger) Summary {
	var in, out int64
	for _, t := range ledger {
		switch t.Type {
		case Credit:
			in += t.Amount.Kobo
		case Debit:
			out += t.Amount.Kobo
		}
	}
	return Summary{
		TotalInflow:  Money{Kobo: in},
		TotalOutflow: Money{Kobo: out},
		NetBalance:   Money{Kobo: in - out},
	}
}
