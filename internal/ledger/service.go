// Package ledger owns the in-session transaction ledger: loading it from
// the storage slot, mutating it, and writing it back after every change.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"kobo/internal/core"
	"kobo/internal/kv"
	"kobo/internal/log"
)

// Publisher receives best-effort notifications after each mutation. A nil
// Publisher disables events entirely.
type Publisher interface {
	PublishTransactionAdded(ctx context.Context, tx core.Transaction) error
	PublishTransactionRemoved(ctx context.Context, id string) error
}

// Service is the session-scoped owner of the ledger. The in-memory state
// is the source of truth for the running session; persistence and event
// publishing are side effects that may fail without rolling anything back.
type Service struct {
	mu      sync.Mutex
	store   kv.Store
	key     string
	pub     Publisher
	ledger  core.Ledger
	saveErr error

	newID func() string
}

func NewService(store kv.Store, key string, pub Publisher) *Service {
	return &Service{
		store: store,
		key:   key,
		pub:   pub,
		newID: uuid.NewString,
	}
}

// Load reads the persisted blob into memory. A missing slot means a first
// run and yields an empty ledger. A malformed blob is deliberately not an
// error: it is logged and the session starts empty rather than refusing to
// start. Only a failing storage backend is returned to the caller.
func (s *Service) Load(ctx context.Context) error {
	blob, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ok {
		s.ledger = core.Ledger{}
		slog.InfoContext(ctx, "No persisted ledger, starting empty",
			log.FieldOperation, log.OpLoad, log.FieldStorageKey, s.key)
		return nil
	}

	var ledger core.Ledger
	if err := json.Unmarshal([]byte(blob), &ledger); err != nil {
		slog.WarnContext(ctx, "Persisted ledger is corrupted, falling back to empty",
			log.FieldOperation, log.OpLoad, log.FieldStorageKey, s.key, log.FieldError, err)
		s.ledger = core.Ledger{}
		return nil
	}

	s.ledger = ledger
	slog.InfoContext(ctx, "Ledger loaded",
		log.FieldOperation, log.OpLoad, log.FieldStorageKey, s.key, log.FieldCount, len(ledger))
	return nil
}

// Add validates the draft, assigns a fresh id and prepends the new
// transaction, so the ledger stays newest-first by insertion. The updated
// ledger is persisted and an event is published; neither failure undoes
// the in-memory add.
func (s *Service) Add(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	tx := draft.Transaction(s.newID())
	s.ledger = append(core.Ledger{tx}, s.ledger...)
	s.saveLocked(ctx)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Transaction added",
		log.FieldOperation, log.OpAdd,
		log.FieldTransactionID, tx.ID,
		log.FieldDescription, tx.Description,
		log.FieldAmountKobo, tx.Amount.Kobo,
		log.FieldTxType, tx.Type,
		log.FieldTxDate, tx.Date)

	if s.pub != nil {
		if err := s.pub.PublishTransactionAdded(ctx, tx); err != nil {
			slog.WarnContext(ctx, "Failed to publish add event",
				log.FieldOperation, log.OpPublish, log.FieldTransactionID, tx.ID, log.FieldError, err)
		}
	}
	return tx, nil
}

// Remove deletes the transaction with the given id. A missing id is a
// no-op, not an error; the persisted blob is rewritten either way.
func (s *Service) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	kept := make(core.Ledger, 0, len(s.ledger))
	removed := false
	for _, tx := range s.ledger {
		if tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	s.ledger = kept
	s.saveLocked(ctx)
	s.mu.Unlock()

	if removed {
		slog.InfoContext(ctx, "Transaction removed",
			log.FieldOperation, log.OpRemove, log.FieldTransactionID, id)
	} else {
		slog.DebugContext(ctx, "Remove of unknown transaction ignored",
			log.FieldOperation, log.OpRemove, log.FieldTransactionID, id)
	}

	if removed && s.pub != nil {
		if err := s.pub.PublishTransactionRemoved(ctx, id); err != nil {
			slog.WarnContext(ctx, "Failed to publish remove event",
				log.FieldOperation, log.OpPublish, log.FieldTransactionID, id, log.FieldError, err)
		}
	}
}

// Snapshot returns a copy of the ledger filtered by mode, preserving
// order. Callers may hold on to the result; it never aliases internal
// state.
func (s *Service) Snapshot(mode core.FilterMode) core.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Filter(s.ledger, mode)
}

// Summary aggregates the full, unfiltered ledger.
func (s *Service) Summary() core.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Aggregate(s.ledger)
}

// PersistError reports the outcome of the most recent save. A non-nil
// value means the last mutation is held in memory only; the next
// successful save clears it.
func (s *Service) PersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// saveLocked writes the full ledger blob. Write failures are remembered
// and logged as warnings; the in-memory ledger stays authoritative.
func (s *Service) saveLocked(ctx context.Context) {
	blob, err := json.Marshal(s.ledger)
	if err != nil {
		// Marshalling a ledger of plain values cannot realistically fail,
		// but treat it like any other persistence failure if it does.
		s.saveErr = fmt.Errorf("encode ledger: %w", err)
		slog.WarnContext(ctx, "Failed to encode ledger", log.FieldOperation, log.OpSave, log.FieldError, err)
		return
	}
	if err := s.store.Set(ctx, s.key, string(blob)); err != nil {
		s.saveErr = fmt.Errorf("persist ledger: %w", err)
		slog.WarnContext(ctx, "Failed to persist ledger, keeping in-memory state",
			log.FieldOperation, log.OpSave, log.FieldStorageKey, s.key, log.FieldError, err)
		return
	}
	s.saveErr = nil
}
