// Package rawstore persists the verbatim provider responses as an
// append-only audit trail, one NDJSON file per fetch run.
package rawstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create raw dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewBatch opens the raw file for one fetch run, named by source-key and
// date range plus a unique batch ID so re-runs never clobber earlier
// evidence.
func (s *Store) NewBatch(sourceKey string, since, until time.Time) (*Batch, error) {
	name := fmt.Sprintf("%s_%s_%s_%s.ndjson",
		sourceKey,
		since.UTC().Format("20060102"),
		until.UTC().Format("20060102"),
		uuid.NewString(),
	)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open raw batch file: %w", err)
	}

	return &Batch{f: f, path: path}, nil
}

// Batch is an open raw file for one fetch run. Pages are flushed as they
// arrive so partial progress survives a later failure.
type Batch struct {
	f     *os.File
	path  string
	pages int
	items int
}

// WritePage appends each item as one NDJSON line and syncs the file.
func (b *Batch) WritePage(items []json.RawMessage) error {
	for _, item := range items {
		if _, err := b.f.Write(item); err != nil {
			return fmt.Errorf("write raw record: %w", err)
		}
		if _, err := b.f.Write([]byte("\n")); err != nil {
			return fmt.Errorf("write raw record: %w", err)
		}
	}
	if err := b.f.Sync(); err != nil {
		return fmt.Errorf("sync raw batch: %w", err)
	}
	b.pages++
	b.items += len(items)
	return nil
}

// Pages returns the number of pages written so far.
func (b *Batch) Pages() int {
	return b.pages
}

// Items returns the number of records written so far.
func (b *Batch) Items() int {
	return b.items
}

// Path returns the batch file location.
func (b *Batch) Path() string {
	return b.path
}

// Close closes the batch file, removing it when no records were written.
func (b *Batch) Close() error {
	if err := b.f.Close(); err != nil {
		return err
	}
	if b.items == 0 {
		return os.Remove(b.path)
	}
	return nil
}
