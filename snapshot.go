package main

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Snapshot: cache local en sqlite del último fetch de inventario, para
// poder repetir una corrida sin pegarle al API (FETCH_ON_START=false).
type Snapshot struct {
	DB *sql.DB
}

func OpenSnapshot(dbPath string) (*Snapshot, error) {
	// _pragma busy_timeout para evitar "database is locked"
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(2 * time.Minute)
	db.SetMaxOpenConns(1)

	s := &Snapshot{DB: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Snapshot) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS items(
  barcode    TEXT NOT NULL DEFAULT '',
  quantity   INTEGER NOT NULL DEFAULT 0,
  sku        TEXT NOT NULL DEFAULT '',
  fetched_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
);
CREATE INDEX IF NOT EXISTS idx_items_barcode ON items(barcode);
`
	_, err := s.DB.ExecContext(ctx, schema)
	return err
}

func (s *Snapshot) Close() error { return s.DB.Close() }

// Replace reemplaza el snapshot completo por los items recién traídos.
func (s *Snapshot) Replace(ctx context.Context, items []Item) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	stmt := `INSERT INTO items(barcode,quantity,sku,fetched_at) VALUES(?,?,?,strftime('%s','now'))`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, stmt, it.Barcode, it.Quantity, it.SKU); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load devuelve los items del snapshot en el orden en que se guardaron.
func (s *Snapshot) Load(ctx context.Context) ([]Item, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT barcode,quantity,sku FROM items ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Barcode, &it.Quantity, &it.SKU); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
