package backend

import (
	"fmt"
	"log/slog"

	"kobo/internal/config"
	"kobo/internal/kv"
	"kobo/internal/log"
)

// Result pairs a constructed store with its cleanup function.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Factory creates storage backends from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the store named by the config. The caller owns the
// returned cleanup function.
func (f *Factory) Create(cfg *config.Config) (*Result, error) {
	t := FromAppConfig(cfg)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", t)
	}

	switch t {
	case FileBackend:
		store, err := kv.NewFileStore(cfg.LedgerDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		f.logger.Info("Initialized file backend", log.FieldBackend, t, "dir", cfg.LedgerDir)
		return &Result{Store: store}, nil

	case SQLiteBackend:
		store, err := kv.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", log.FieldBackend, t, "db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend", log.FieldBackend, t)
		return &Result{Store: kv.NewMemoryStore()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}
