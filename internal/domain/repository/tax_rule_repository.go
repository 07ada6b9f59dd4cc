package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// TaxRuleRepository puerto de lectura de reglas tributarias por clase.
type TaxRuleRepository interface {
	ListByTaxClass(ctx context.Context, taxClassID string) ([]entity.TaxRule, error)
}
