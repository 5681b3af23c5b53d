package services

import (
	"context"
	"errors"
	"testing"

	"sintomi/internal/core"
	"sintomi/internal/store/memory"
)

type failingStore struct {
	loadErr error
	saveErr error
	table   core.Table
}

func (f *failingStore) Load(context.Context) (core.Table, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.table, nil
}

func (f *failingStore) Save(_ context.Context, t core.Table) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.table = t
	return nil
}

func TestRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTrackerService(memory.New())

	table, err := svc.Record(ctx, core.NewRecord(core.NewDate(2024, 1, 1), map[string]bool{"Cramps": true}))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table))
	}

	table, err = svc.Record(ctx, core.NewRecord(core.NewDate(2024, 1, 15), map[string]bool{"Bloating": true}))
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table))
	}

	got := svc.Summary(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(got))
	}
	if p := got[0].PrevalenceOf("Cramps"); p != 50.0 {
		t.Fatalf("Cramps prevalence = %v, want 50.0", p)
	}
	if p := got[0].PrevalenceOf("Bloating"); p != 50.0 {
		t.Fatalf("Bloating prevalence = %v, want 50.0", p)
	}
	if p := got[0].PrevalenceOf("Acne"); p != 0.0 {
		t.Fatalf("Acne prevalence = %v, want 0.0", p)
	}
}

func TestRecordRejectsInvalid(t *testing.T) {
	svc := NewTrackerService(memory.New())
	if _, err := svc.Record(context.Background(), core.Record{}); err == nil {
		t.Fatalf("expected validation error for zero date")
	}
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	svc := NewTrackerService(&failingStore{loadErr: errors.New("disk on fire")})

	if got := svc.Summary(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty summary, got %d rows", len(got))
	}

	table, err := svc.Record(context.Background(), core.NewRecord(core.NewDate(2024, 3, 1), nil))
	if err != nil {
		t.Fatalf("record should not fail on load error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected record kept in memory, got %d", len(table))
	}
}

func TestSaveFailureKeepsInMemoryTable(t *testing.T) {
	fs := &failingStore{saveErr: errors.New("read-only filesystem")}
	svc := NewTrackerService(fs)

	table, err := svc.Record(context.Background(), core.NewRecord(core.NewDate(2024, 3, 2), map[string]bool{"Fatigue": true}))
	if err != nil {
		t.Fatalf("save failure must stay a diagnostic, got %v", err)
	}
	if len(table) != 1 || !table[0].Flag("Fatigue") {
		t.Fatalf("expected in-memory table to carry the record: %v", table)
	}
}
