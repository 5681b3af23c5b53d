package core

import "testing"

func TestUpsertAppendsAndSorts(t *testing.T) {
	table := EmptyTable()

	table = table.Upsert(NewRecord(NewDate(2024, 2, 2), map[string]bool{"Cramps": true}))
	if len(table) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table))
	}

	table = table.Upsert(NewRecord(NewDate(2024, 2, 1), nil))
	if len(table) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table))
	}
	if table[0].Date.Key() != "2024-02-01" || table[1].Date.Key() != "2024-02-02" {
		t.Fatalf("expected ascending order, got %s, %s", table[0].Date.Key(), table[1].Date.Key())
	}
}

func TestUpsertLastWriteWins(t *testing.T) {
	d := NewDate(2024, 3, 10)
	table := EmptyTable()
	table = table.Upsert(NewRecord(d, map[string]bool{"Cramps": true}))
	table = table.Upsert(NewRecord(d, map[string]bool{"Bloating": true}))

	if len(table) != 1 {
		t.Fatalf("expected 1 record after duplicate upsert, got %d", len(table))
	}
	if table[0].Flag("Cramps") {
		t.Fatalf("expected prior flags replaced")
	}
	if !table[0].Flag("Bloating") {
		t.Fatalf("expected latest flags kept")
	}
}

func TestUpsertDoesNotMutateInput(t *testing.T) {
	orig := Table{NewRecord(NewDate(2024, 1, 5), nil)}
	_ = orig.Upsert(NewRecord(NewDate(2024, 1, 1), nil))
	if len(orig) != 1 || orig[0].Date.Key() != "2024-01-05" {
		t.Fatalf("input table mutated: %v", orig)
	}
}

func TestNormalize(t *testing.T) {
	d := NewDate(2024, 1, 2)
	table := Table{
		NewRecord(NewDate(2024, 1, 3), nil),
		NewRecord(d, map[string]bool{"Acne": true}),
		NewRecord(NewDate(2024, 1, 1), nil),
		NewRecord(d, map[string]bool{"Fatigue": true}), // later duplicate wins
	}
	got := table.Normalize()
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	keys := []string{got[0].Date.Key(), got[1].Date.Key(), got[2].Date.Key()}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, keys, want)
		}
	}
	if got[1].Flag("Acne") || !got[1].Flag("Fatigue") {
		t.Fatalf("expected later duplicate to win: %v", got[1].Flags)
	}
}
