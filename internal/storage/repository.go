// Package storage is the SQLite-backed manual record store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripledger/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

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

// List implements records.Store, returning records in creation order.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.ManualRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, name, description, amount, created_at
		FROM manual_records
		ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []core.ManualRecord
	for rows.Next() {
		var (
			rec      core.ManualRecord
			category string
		)
		if err := rows.Scan(&rec.ID, &category, &rec.Name, &rec.Description, &rec.Amount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Category = core.Category(category)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Add implements records.Store.
func (r *SQLiteRepository) Add(ctx context.Context, nr core.NewRecord) (core.ManualRecord, error) {
	if err := nr.Validate(); err != nil {
		return core.ManualRecord{}, err
	}
	cat, err := core.ParseCategory(nr.Category)
	if err != nil {
		return core.ManualRecord{}, err
	}

	rec := core.ManualRecord{
		ID:          uuid.NewString(),
		Category:    cat,
		Name:        strings.TrimSpace(nr.Name),
		Description: strings.TrimSpace(nr.Description),
		Amount:      nr.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO manual_records (id, category, name, description, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Category), rec.Name, rec.Description, rec.Amount, rec.CreatedAt)
	if err != nil {
		return core.ManualRecord{}, fmt.Errorf("insert record: %w", err)
	}

	slog.InfoContext(ctx, "Manual record saved to SQLite",
		"id", rec.ID,
		"category", rec.Category,
		"name", rec.Name,
		"amount", rec.Amount)

	return rec, nil
}

// ClearAll implements records.Store.
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM manual_records`)
	if err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil {
		slog.InfoContext(ctx, "Manual records cleared", "removed", n)
	}
	return nil
}
