package pricing

import (
	"context"
	"time"

	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

// Repositories puertos de lectura que necesita una cotización.
type Repositories struct {
	Products   repository.ProductRepository
	PriceBooks repository.PriceBookRepository
	Entries    repository.PriceBookEntryRepository
	TaxRules   repository.TaxRuleRepository
}

// SnapshotRunner ejecuta fn con repositorios atados a una misma instantánea de lectura
// (ej. transacción REPEATABLE READ de solo lectura), para que producto, lista, escalones y
// reglas sean consistentes entre sí.
type SnapshotRunner interface {
	RunSnapshot(ctx context.Context, fn func(repos Repositories) error) error
}

// QuoteObserver recibe el resultado de cada cotización (métricas). Outcome es "OK" o el código de error.
type QuoteObserver interface {
	ObserveQuote(outcome, basis string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveQuote(string, string, time.Duration) {}

// Config límites del caso de uso de cotización.
type Config struct {
	BatchConcurrency int // líneas cotizadas en paralelo
	MaxBatchLines    int
}

func (c Config) withDefaults() Config {
	if c.BatchConcurrency <= 0 {
		c.BatchConcurrency = 8
	}
	if c.MaxBatchLines <= 0 {
		c.MaxBatchLines = 200
	}
	return c
}
