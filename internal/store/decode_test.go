package store

import (
	"testing"

	"sintomi/internal/core"
)

func TestParseBool(t *testing.T) {
	cases := []struct {
		in    string
		value bool
		ok    bool
	}{
		{"True", true, true},
		{"true", true, true},
		{"1", true, true},
		{"False", false, true},
		{"0", false, true},
		{"", false, true},
		{"<NA>", false, true},
		{"maybe", false, false},
	}
	for _, tc := range cases {
		v, ok := ParseBool(tc.in)
		if v != tc.value || ok != tc.ok {
			t.Fatalf("ParseBool(%q) = (%v, %v), want (%v, %v)", tc.in, v, ok, tc.value, tc.ok)
		}
	}
}

func TestDecodeRowsNoDateColumn(t *testing.T) {
	got := DecodeRows([]string{"Cramps", "Acne"}, [][]string{{"True", "False"}})
	if len(got) != 0 {
		t.Fatalf("expected empty table without a date column, got %d rows", len(got))
	}
}

func TestDecodeRowsIgnoresUnknownColumns(t *testing.T) {
	header := []string{"Date", "Cramps", "Notes"}
	rows := [][]string{{"2024-06-01", "True", "felt awful"}}
	got := DecodeRows(header, rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if !got[0].Flag("Cramps") {
		t.Fatalf("expected Cramps true")
	}
	if err := got[0].Validate(); err != nil {
		t.Fatalf("decoded record invalid: %v", err)
	}
}

func TestEncodeRowsShape(t *testing.T) {
	table := core.Table{core.NewRecord(core.NewDate(2024, 6, 1), map[string]bool{"Acne": true})}
	rows := EncodeRows(table)
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if len(rows[0]) != len(core.Symptoms)+1 {
		t.Fatalf("header width = %d, want %d", len(rows[0]), len(core.Symptoms)+1)
	}
	if rows[1][0] != "2024-06-01" {
		t.Fatalf("date cell = %q", rows[1][0])
	}
	if rows[1][len(rows[1])-1] != "True" {
		t.Fatalf("expected Acne cell True, got %q", rows[1][len(rows[1])-1])
	}
}
