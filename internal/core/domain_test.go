package core

import (
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2024, 1, 1), true},
		{NewDate(2024, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-02-01", "2024-02-01", true},
		{"2024-02-01 00:00:00", "2024-02-01", true},
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error", tc.in)
			}
			continue
		}
		if d.Key() != tc.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, d.Key(), tc.want)
		}
	}
}

func TestRecordValidate(t *testing.T) {
	good := NewRecord(NewDate(2024, 1, 1), map[string]bool{"Cramps": true})
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	if err := (Record{}).Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}

	bad := NewRecord(NewDate(2024, 1, 1), map[string]bool{"Nausea": true})
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown symptom")
	}
}

func TestRecordFlagDefaultsFalse(t *testing.T) {
	r := NewRecord(NewDate(2024, 1, 1), map[string]bool{"Fatigue": true})
	if !r.Flag("Fatigue") {
		t.Fatalf("expected Fatigue true")
	}
	if r.Flag("Acne") {
		t.Fatalf("expected unset Acne to read false")
	}
}
