// Package csvfile persists the record table as a flat CSV file, the
// canonical backend. One header row in schema order, one data row per
// day; the whole file is rewritten on every save.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"sintomi/internal/core"
	"sintomi/internal/store"
)

type Store struct {
	path string
}

var _ store.Store = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted table. A missing, unreadable or malformed file
// never fails the caller: it degrades to an empty, correctly shaped table
// with a diagnostic log line. Row-level problems are coerced or skipped
// individually.
func (s *Store) Load(ctx context.Context) (core.Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.InfoContext(ctx, "No data file found, starting empty", "path", s.path)
		return core.EmptyTable(), nil
	}
	if err != nil {
		slog.WarnContext(ctx, "Data file unreadable, starting empty", "path", s.path, "error", err)
		return core.EmptyTable(), nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, salvage what parses
	rows, err := r.ReadAll()
	if err != nil {
		slog.WarnContext(ctx, "Data file malformed, starting empty", "path", s.path, "error", err)
		return core.EmptyTable(), nil
	}
	if len(rows) == 0 {
		return core.EmptyTable(), nil
	}

	table := store.DecodeRows(rows[0], rows[1:])
	slog.InfoContext(ctx, "Loaded symptom data", "path", s.path, "records", len(table))
	return table, nil
}

// Save rewrites the whole file, creating parent directories as needed.
// The write goes through a temp file and rename so a failed save never
// truncates the previous data.
func (s *Store) Save(ctx context.Context, t core.Table) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(store.EncodeRows(t)); err != nil {
		tmp.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}

	slog.InfoContext(ctx, "Saved symptom data", "path", s.path, "records", len(t))
	return nil
}
