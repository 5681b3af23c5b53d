package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sintomi/internal/core"
	"sintomi/internal/store"

	_ "modernc.org/sqlite"
)

// symptomColumns maps core.Symptoms, in order, to their SQL column names.
var symptomColumns = []string{
	"cramps",
	"bloating",
	"mood_swings",
	"fatigue",
	"headaches",
	"back_pain",
	"food_cravings",
	"acne",
}

type SQLiteRepository struct {
	db *sql.DB
}

var _ store.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load returns the full table, ascending by date.
func (r *SQLiteRepository) Load(ctx context.Context) (core.Table, error) {
	query := fmt.Sprintf("SELECT date, %s FROM symptom_days ORDER BY date ASC",
		strings.Join(symptomColumns, ", "))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select symptom days: %w", err)
	}
	defer rows.Close()

	table := core.EmptyTable()
	for rows.Next() {
		var dateStr string
		flagCells := make([]int, len(symptomColumns))
		dest := make([]any, 0, len(symptomColumns)+1)
		dest = append(dest, &dateStr)
		for i := range flagCells {
			dest = append(dest, &flagCells[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan symptom day: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			slog.WarnContext(ctx, "Skipping row with unreadable date", "date", dateStr, "error", err)
			continue
		}
		flags := make(map[string]bool, len(core.Symptoms))
		for i, name := range core.Symptoms {
			if flagCells[i] != 0 {
				flags[name] = true
			}
		}
		table = append(table, core.NewRecord(date, flags))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate symptom days: %w", err)
	}

	return table.Normalize(), nil
}

// Save replaces the stored table with t in one transaction, mirroring the
// full-overwrite behavior of the file backend.
func (r *SQLiteRepository) Save(ctx context.Context, t core.Table) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM symptom_days"); err != nil {
		return fmt.Errorf("clear symptom days: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(symptomColumns)+1), ", ")
	insert := fmt.Sprintf("INSERT INTO symptom_days (date, %s) VALUES (%s)",
		strings.Join(symptomColumns, ", "), placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range t {
		args := make([]any, 0, len(symptomColumns)+1)
		args = append(args, rec.Date.Key())
		for _, name := range core.Symptoms {
			v := 0
			if rec.Flag(name) {
				v = 1
			}
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert symptom day %s: %w", rec.Date.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Saved symptom data to SQLite", "records", len(t))
	return nil
}
