// Package sqlite aloja el catálogo en SQLite (modernc, sin cgo) para despliegues embebidos
// y para las pruebas de comportamiento del motor de filtrado.
package sqlite

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// MemoryDSN base en memoria; vive mientras viva la única conexión del pool.
const MemoryDSN = ":memory:"

// Open abre la base y aplica el esquema (idempotente).
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}
	// Cada conexión a :memory: es una base distinta.
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.Open ping: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate crea las tablas del catálogo si no existen.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite.Migrate: %w", err)
	}
	return nil
}
