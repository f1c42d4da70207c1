package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kobo/internal/log"
)

// Delivery is the host environment's file-save capability. The core only
// produces text; getting it into the user's hands is the collaborator's
// job.
type Delivery interface {
	Deliver(filename, mimeType string, data []byte) error
}

// DirDelivery drops exports into a local directory. It backs the CLI-less
// deployment where the dashboard and the user's filesystem are the same
// machine; the HTTP layer separately serves exports as downloads.
type DirDelivery struct {
	dir string
}

func NewDirDelivery(dir string) (*DirDelivery, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &DirDelivery{dir: dir}, nil
}

func (d *DirDelivery) Deliver(filename, mimeType string, data []byte) error {
	path := filepath.Join(d.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("deliver export: %w", err)
	}
	slog.Info("Export delivered",
		log.FieldOperation, log.OpExport,
		log.FieldFilename, filename,
		"path", path, "mime_type", mimeType, "bytes", len(data))
	return nil
}
