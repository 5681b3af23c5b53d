// Package memory keeps the record table in process memory. Used as the
// zero-config fallback backend and in tests; data does not survive a
// restart.
package memory

import (
	"context"
	"sync"

	"sintomi/internal/core"
	"sintomi/internal/store"
)

type Store struct {
	mu    sync.Mutex
	table core.Table
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{table: core.EmptyTable()}
}

// NewWithTable seeds the store with an initial table.
func NewWithTable(t core.Table) *Store {
	s := New()
	_ = s.Save(context.Background(), t)
	return s
}

func (s *Store) Load(_ context.Context) (core.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(core.Table, len(s.table))
	copy(out, s.table)
	return out, nil
}

func (s *Store) Save(_ context.Context, t core.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = make(core.Table, len(t))
	copy(s.table, t)
	return nil
}
