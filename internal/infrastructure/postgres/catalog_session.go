package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appcatalog "github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlquery"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlstore"
)

var _ appcatalog.CatalogSession = (*CatalogSession)(nil)

// CatalogSession abre una transacción de solo lectura por petición de filtrado.
// REPEATABLE READ garantiza que conteo, página y facetas vean la misma foto de los datos.
type CatalogSession struct {
	pool *pgxpool.Pool
}

// NewCatalogSession construye la sesión con el pool.
func NewCatalogSession(pool *pgxpool.Pool) *CatalogSession {
	return &CatalogSession{pool: pool}
}

// ReadOnly ejecuta fn con un lector atado a la transacción. Nunca hay escrituras: el Commit
// solo libera la transacción.
func (s *CatalogSession) ReadOnly(ctx context.Context, fn func(repository.CatalogReader) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(sqlstore.NewCatalogReader(txQuerier{tx: tx}, sqlquery.Dollar)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit read-only transaction: %w", err)
	}
	return nil
}

// txQuerier adapta pgx.Tx al Querier del lector SQL.
type txQuerier struct {
	tx pgx.Tx
}

func (q txQuerier) Query(ctx context.Context, sql string, args ...any) (sqlstore.Rows, error) {
	return q.tx.Query(ctx, sql, args...)
}
