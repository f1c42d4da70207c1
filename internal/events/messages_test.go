package events

import (
	"testing"

	"kobo/internal/core"
)

func TestAddedEventCarriesFullRecord(t *testing.T) {
	tx := core.Transaction{
		ID:          "abc",
		Description: "Salary",
		Amount:      core.Money{Kobo: 50000000},
		Type:        core.Credit,
		Date:        "2024-01-15",
	}
	data, err := NewAddedEvent(tx).ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	e, err := TransactionEventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Action != ActionAdded || e.ID != "abc" || e.AmountKobo != 50000000 || e.Type != "credit" || e.Date != "2024-01-15" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestRemovedEventCarriesIDOnly(t *testing.T) {
	data, err := NewRemovedEvent("abc").ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	e, err := TransactionEventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Action != ActionRemoved || e.ID != "abc" || e.Description != "" || e.AmountKobo != 0 {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestTransactionEventFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TransactionEventFromJSON([]byte(`{"action":`)); err == nil {
		t.Fatalf("expected error")
	}
}
