package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

type (
	// TransactionType determines the sign of a transaction's effect on the
	// net balance. The stored amount itself is always a magnitude.
	TransactionType string

	Money struct {
		Kobo int64
	}

	// Transaction is a single recorded credit or debit event. Transactions
	// are never mutated after creation; they are only added and removed.
	Transaction struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Date        string          `json:"date"` // ISO-8601 date, no time component
	}

	// Ledger is the complete ordered collection of transactions,
	// newest-first by insertion.
	Ledger []Transaction

	// Draft is the user-entered portion of a transaction, before an id has
	// been assigned.
	Draft struct {
		Description string
		Amount      Money
		Type        TransactionType
		Date        string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyAmount      = errors.New("empty amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidDate      = errors.New("invalid date")
)

func (t TransactionType) Valid() bool {
	return t == Credit || t == Debit
}

// Validate enforces the entry-time rules: non-empty description, a known
// type, a calendar date and a non-negative amount. Stored transactions are
// not re-validated; the rules apply at submission only.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return ErrInvalidDate
	}
	if d.Amount.Kobo < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Transaction builds a Transaction from the draft with the given id.
func (d Draft) Transaction(id string) Transaction {
	return Transaction{
		ID:          id,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        d.Type,
		Date:        d.Date,
	}
}
