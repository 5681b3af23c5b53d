package store

import (
	"context"

	"sintomi/internal/core"
)

// Ports for persistence backends. The table is always read and written
// whole; there is no incremental append format.
type (
	// Loader reads the full persisted table.
	Loader interface {
		Load(ctx context.Context) (core.Table, error)
	}

	// Saver overwrites the persisted table with t.
	Saver interface {
		Save(ctx context.Context, t core.Table) error
	}

	// Store is a full read/overwrite persistence backend.
	Store interface {
		Loader
		Saver
	}
)
