package core

import "testing"

func TestFilterAllKeepsOrder(t *testing.T) {
	ledger := sample()
	got := Filter(ledger, FilterAll)
	if len(got) != len(ledger) {
		t.Fatalf("all filter dropped entries: %d vs %d", len(got), len(ledger))
	}
	for i := range ledger {
		if got[i].ID != ledger[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, got[i].ID, ledger[i].ID)
		}
	}
}

func TestFilterPartitions(t *testing.T) {
	ledger := sample()
	credits := Filter(ledger, FilterCredit)
	debits := Filter(ledger, FilterDebit)

	if len(credits)+len(debits) != len(ledger) {
		t.Fatalf("partition lost entries: %d + %d != %d", len(credits), len(debits), len(ledger))
	}
	for _, tx := range credits {
		if tx.Type != Credit {
			t.Fatalf("credit filter returned %s", tx.Type)
		}
	}
	for _, tx := range debits {
		if tx.Type != Debit {
			t.Fatalf("debit filter returned %s", tx.Type)
		}
	}

	// Merging the two by original position must recover the ledger order.
	ci, di := 0, 0
	for _, tx := range ledger {
		if tx.Type == Credit {
			if credits[ci].ID != tx.ID {
				t.Fatalf("credit order broken at %s", tx.ID)
			}
			ci++
		} else {
			if debits[di].ID != tx.ID {
				t.Fatalf("debit order broken at %s", tx.ID)
			}
			di++
		}
	}
}

func TestFilterEmptyLedger(t *testing.T) {
	for _, mode := range []FilterMode{FilterAll, FilterCredit, FilterDebit} {
		if got := Filter(nil, mode); len(got) != 0 {
			t.Fatalf("filter %s on empty ledger returned %d entries", mode, len(got))
		}
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	ledger := sample()
	before := make(Ledger, len(ledger))
	copy(before, ledger)
	_ = Filter(ledger, FilterCredit)
	for i := range before {
		if ledger[i] != before[i] {
			t.Fatalf("filter mutated ledger at %d", i)
		}
	}
}

func TestParseFilterMode(t *testing.T) {
	cases := map[string]FilterMode{
		"all":    FilterAll,
		"credit": FilterCredit,
		"debit":  FilterDebit,
		"":       FilterAll,
		"bogus":  FilterAll,
	}
	for in, want := range cases {
		if got := ParseFilterMode(in); got != want {
			t.Fatalf("ParseFilterMode(%q) = %q, want %q", in, got, want)
		}
	}
}
