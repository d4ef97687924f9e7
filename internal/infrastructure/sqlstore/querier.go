// Package sqlstore implementa el puerto de lectura del catálogo sobre SQL, independiente
// del driver: PostgreSQL (pgx) y SQLite (sqlx) solo aportan un Querier y su formato de placeholder.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Rows subconjunto común de pgx.Rows y *sqlx.Rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier ejecuta consultas dentro de la sesión de lectura de la petición.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// timeValue acepta time.Time (pgx, sqlite con tipo declarado) o texto/entero (sqlite).
type timeValue struct {
	t time.Time
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (v *timeValue) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		v.t = time.Time{}
	case time.Time:
		v.t = x
	case int64:
		v.t = time.Unix(x, 0).UTC()
	case string:
		return v.parse(x)
	case []byte:
		return v.parse(string(x))
	default:
		return fmt.Errorf("timeValue: tipo no soportado %T", src)
	}
	return nil
}

func (v *timeValue) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.t = t
			return nil
		}
	}
	return fmt.Errorf("timeValue: formato no reconocido %q", s)
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
