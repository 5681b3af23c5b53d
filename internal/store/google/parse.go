package google

import (
	"fmt"
	"strings"

	"sintomi/internal/core"
	"sintomi/internal/store"
)

// parseValues converts a values matrix (as returned by the Sheets API)
// into a record table, reusing the schema reconciliation the file backend
// applies. Sheets cells may arrive as bool, float or string; everything is
// stringified first.
func parseValues(values [][]interface{}) core.Table {
	if len(values) == 0 {
		return core.EmptyTable()
	}
	header := toStrings(values[0])
	rows := make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rows = append(rows, toStrings(row))
	}
	return store.DecodeRows(header, rows)
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = strings.TrimSpace(t)
		case bool:
			out[i] = store.FormatBool(t)
		default:
			out[i] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return out
}
