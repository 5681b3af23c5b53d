package core

import "sort"

// Table is the full ordered collection of daily records: at most one
// record per date, sorted ascending by date. Callers own their table
// value and thread it explicitly through store and summary calls; no
// operation here mutates its receiver.
type Table []Record

// EmptyTable returns a non-nil table with no rows.
func EmptyTable() Table {
	return Table{}
}

// Upsert returns a new table containing rec. An existing record with the
// same date is replaced (last write wins); ascending date order is
// restored. The result is not persisted.
func (t Table) Upsert(rec Record) Table {
	out := make(Table, 0, len(t)+1)
	for _, r := range t {
		if r.Date.Key() == rec.Date.Key() {
			continue
		}
		out = append(out, r)
	}
	out = append(out, rec)
	out.sortByDate()
	return out
}

// Normalize returns a copy deduplicated by date (later entries win) and
// sorted ascending. Loaders use it to repair whatever order a data file
// arrived in.
func (t Table) Normalize() Table {
	byDate := make(map[string]int, len(t))
	out := make(Table, 0, len(t))
	for _, r := range t {
		if i, seen := byDate[r.Date.Key()]; seen {
			out[i] = r
			continue
		}
		byDate[r.Date.Key()] = len(out)
		out = append(out, r)
	}
	out.sortByDate()
	return out
}

func (t Table) sortByDate() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Date.Before(t[j].Date.Time)
	})
}
