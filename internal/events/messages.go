package events

import (
	"encoding/json"
	"time"

	"kobo/internal/core"
)

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// TransactionEvent is the wire form of a ledger mutation notification.
// Added events carry the full record so consumers need no read access to
// the storage slot; removed events carry the id only.
type TransactionEvent struct {
	Action      string    `json:"action"`
	ID          string    `json:"id"`
	Description string    `json:"description,omitempty"`
	AmountKobo  int64     `json:"amount_kobo,omitempty"`
	Type        string    `json:"type,omitempty"`
	Date        string    `json:"date,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewAddedEvent builds the event for a freshly recorded transaction.
func NewAddedEvent(tx core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Action:      ActionAdded,
		ID:          tx.ID,
		Description: tx.Description,
		AmountKobo:  tx.Amount.Kobo,
		Type:        string(tx.Type),
		Date:        tx.Date,
		Timestamp:   time.Now(),
	}
}

// NewRemovedEvent builds the event for a deleted transaction.
func NewRemovedEvent(id string) *TransactionEvent {
	return &TransactionEvent{
		Action:    ActionRemoved,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON parses an event from JSON bytes.
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
