package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Precios-api/internal/application/pricing"
)

var _ pricing.SnapshotRunner = (*SnapshotRunner)(nil)

// SnapshotRunner ejecuta callbacks dentro de una transacción de solo lectura REPEATABLE READ.
type SnapshotRunner struct {
	pool *pgxpool.Pool
}

// NewSnapshotRunner construye el runner con el pool.
func NewSnapshotRunner(pool *pgxpool.Pool) *SnapshotRunner {
	return &SnapshotRunner{pool: pool}
}

// Repositories repositorios atados al pool, sin transacción.
func Repositories(q Querier) pricing.Repositories {
	return pricing.Repositories{
		Products:   NewProductRepository(q),
		PriceBooks: NewPriceBookRepository(q),
		Entries:    NewPriceBookEntryRepository(q),
		TaxRules:   NewTaxRuleRepository(q),
	}
}

// RunSnapshot inicia la transacción, ejecuta fn con repos atados a ella y hace Commit o Rollback.
func (r *SnapshotRunner) RunSnapshot(ctx context.Context, fn func(repos pricing.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
