package store

import (
	"log/slog"
	"strings"

	"sintomi/internal/core"
)

// DecodeRows reconciles raw tabular data (header + data rows, as read from
// a CSV file or a sheet range) against the canonical schema. Recognized
// symptom columns absent from the header are synthesized as false for every
// row; unrecognized columns are ignored. Coercion is best-effort: a row
// with an unreadable date is skipped, an unreadable flag coerces to false,
// both with a warning. The result is deduplicated by date (later rows win)
// and sorted ascending.
func DecodeRows(header []string, rows [][]string) core.Table {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	dateIdx, ok := col[core.DateColumn]
	if !ok {
		slog.Warn("Data has no date column, starting empty", "header", header)
		return core.EmptyTable()
	}

	table := make(core.Table, 0, len(rows))
	for n, row := range rows {
		if dateIdx >= len(row) {
			slog.Warn("Skipping short row", "row", n+2)
			continue
		}
		date, err := core.ParseDate(strings.TrimSpace(row[dateIdx]))
		if err != nil {
			slog.Warn("Skipping row with unreadable date", "row", n+2, "error", err)
			continue
		}
		flags := make(map[string]bool, len(core.Symptoms))
		for _, name := range core.Symptoms {
			i, present := col[name]
			if !present || i >= len(row) {
				continue // missing column reads as false
			}
			v, ok := ParseBool(row[i])
			if !ok {
				slog.Warn("Coercing unreadable flag to false", "row", n+2, "column", name, "value", row[i])
				continue
			}
			flags[name] = v
		}
		table = append(table, core.NewRecord(date, flags))
	}
	return table.Normalize()
}

// EncodeRows serializes the table in schema order, header row first.
func EncodeRows(t core.Table) [][]string {
	out := make([][]string, 0, len(t)+1)
	out = append(out, core.DefaultSchema().Header())
	for _, r := range t {
		row := make([]string, 0, len(core.Symptoms)+1)
		row = append(row, r.Date.Key())
		for _, name := range core.Symptoms {
			row = append(row, FormatBool(r.Flag(name)))
		}
		out = append(out, row)
	}
	return out
}

// ParseBool interprets the boolean spellings found in data files.
// Empty strings read as an unset flag (false).
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no", "", "<na>":
		return false, true
	default:
		return false, false
	}
}

// FormatBool returns the conventional text form written to data files.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
