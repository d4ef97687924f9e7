package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlquery"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlstore"
)

var _ appcatalog.CatalogSession = (*CatalogSession)(nil)

// CatalogSession una transacción por petición sobre SQLite; el lector ve una sola foto de los datos.
type CatalogSession struct {
	db *sqlx.DB
}

// NewCatalogSession construye la sesión sobre db.
func NewCatalogSession(db *sqlx.DB) *CatalogSession {
	return &CatalogSession{db: db}
}

// ReadOnly ejecuta fn dentro de una transacción que siempre termina en Rollback: el lector no escribe.
func (s *CatalogSession) ReadOnly(ctx context.Context, fn func(repository.CatalogReader) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	return fn(sqlstore.NewCatalogReader(txQuerier{tx: tx}, sqlquery.Question))
}

type txQuerier struct {
	tx *sqlx.Tx
}

func (q txQuerier) Query(ctx context.Context, query string, args ...any) (sqlstore.Rows, error) {
	rs, err := q.tx.QueryxContext(ctx, query, bindArgs(args)...)
	if err != nil {
		return nil, err
	}
	return rows{Rows: rs}, nil
}

// bindArgs SQLite compara NUMERIC contra texto como texto cuando pierde la afinidad de columna
// (tablas derivadas), así que los decimales viajan como REAL.
func bindArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if d, ok := a.(decimal.Decimal); ok {
			out[i] = d.InexactFloat64()
			continue
		}
		out[i] = a
	}
	return out
}

// rows adapta *sqlx.Rows (Close devuelve error) a sqlstore.Rows.
type rows struct {
	*sqlx.Rows
}

func (r rows) Close() { _ = r.Rows.Close() }
