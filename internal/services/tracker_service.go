package services

import (
	"context"
	"fmt"
	"log/slog"

	"sintomi/internal/core"
	"sintomi/internal/store"
)

// TrackerService orchestrates the two user actions against a Store:
// recording one day's symptoms and producing the monthly summary. Recovery
// policy: a backend load failure degrades to an empty table and a save
// failure is reported as a diagnostic only — data problems never abort a
// recording flow.
type TrackerService struct {
	store store.Store
}

func NewTrackerService(s store.Store) *TrackerService {
	return &TrackerService{store: s}
}

// Record validates rec, merges it into the persisted table (last write
// wins per date) and saves the result. The returned table is the new
// in-memory state, valid for the session even when the save failed.
func (s *TrackerService) Record(ctx context.Context, rec core.Record) (core.Table, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("validate record: %w", err)
	}

	table := s.load(ctx)
	table = table.Upsert(rec)

	if err := s.store.Save(ctx, table); err != nil {
		slog.ErrorContext(ctx, "Failed to save symptom data, keeping in-memory table",
			"date", rec.Date.Key(), "error", err)
	}
	return table, nil
}

// Summary loads the current table fresh and aggregates it by month.
func (s *TrackerService) Summary(ctx context.Context) []core.MonthSummary {
	return core.Summarize(s.load(ctx))
}

// Table returns the current persisted table (empty on load failure).
func (s *TrackerService) Table(ctx context.Context) core.Table {
	return s.load(ctx)
}

func (s *TrackerService) load(ctx context.Context) core.Table {
	table, err := s.store.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load symptom data, starting empty", "error", err)
		return core.EmptyTable()
	}
	if table == nil {
		return core.EmptyTable()
	}
	return table
}
