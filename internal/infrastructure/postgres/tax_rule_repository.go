package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.TaxRuleRepository = (*TaxRuleRepo)(nil)

// TaxRuleRepo lectura de reglas tributarias.
type TaxRuleRepo struct {
	q Querier
}

// NewTaxRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaxRuleRepository(q Querier) *TaxRuleRepo {
	return &TaxRuleRepo{q: q}
}

// ListByTaxClass todas las reglas de la clase, incluidas inactivas o vencidas:
// la vigencia se evalúa en el motor contra el as-of de la cotización.
func (r *TaxRuleRepo) ListByTaxClass(ctx context.Context, taxClassID string) ([]entity.TaxRule, error) {
	query := `
		SELECT id, tax_class_id, name, rate_pct, country, region, postal_pattern,
		       is_compound, priority, is_active, valid_from, valid_to
		FROM tax_rules
		WHERE tax_class_id = $1
		ORDER BY priority, id`
	rows, err := r.q.Query(ctx, query, taxClassID)
	if err != nil {
		return nil, fmt.Errorf("list tax rules: %w", err)
	}
	defer rows.Close()
	var list []entity.TaxRule
	for rows.Next() {
		var (
			t                       entity.TaxRule
			country, region, postal *string
		)
		if err := rows.Scan(&t.ID, &t.TaxClassID, &t.Name, &t.RatePct, &country, &region, &postal,
			&t.IsCompound, &t.Priority, &t.IsActive, &t.ValidFrom, &t.ValidTo); err != nil {
			return nil, fmt.Errorf("scan tax rule: %w", err)
		}
		t.Country = deref(country)
		t.Region = deref(region)
		t.PostalPattern = deref(postal)
		list = append(list, t)
	}
	return list, rows.Err()
}
