package pricing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// TaxComputation resultado de aplicar las reglas sobre un subtotal (sin redondear).
type TaxComputation struct {
	Applied          []entity.AppliedTax
	TaxTotal         decimal.Decimal
	EffectiveRatePct decimal.Decimal
}

// OrderTaxRules devuelve una copia ordenada: simples primero, compuestas después;
// dentro de cada grupo por prioridad ascendente y luego ID.
func OrderTaxRules(rules []entity.TaxRule) []entity.TaxRule {
	ordered := slices.Clone(rules)
	slices.SortStableFunc(ordered, func(a, b entity.TaxRule) int {
		if a.IsCompound != b.IsCompound {
			if a.IsCompound {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return ordered
}

// CompoundTaxes aplica las reglas en orden sobre subtotal.
// Las simples siempre gravan el subtotal original. Cada compuesta grava el subtotal más todo
// el impuesto acumulado hasta ese punto, así que las compuestas posteriores ven una base mayor.
// Ej.: 100 con 21% simple y 5% compuesto = 21 + 121 × 5% = 27.05.
// Tasa efectiva = total × 100 / subtotal (0 si subtotal es 0).
func CompoundTaxes(rules []entity.TaxRule, subtotal decimal.Decimal) TaxComputation {
	ordered := OrderTaxRules(rules)
	total := decimal.Zero
	applied := make([]entity.AppliedTax, 0, len(ordered))
	for _, r := range ordered {
		base := subtotal
		if r.IsCompound {
			base = subtotal.Add(total)
		}
		tax := base.Mul(r.RatePct).Div(hundred)
		total = total.Add(tax)
		applied = append(applied, entity.AppliedTax{
			RuleID:     r.ID,
			Name:       r.Name,
			RatePct:    r.RatePct,
			IsCompound: r.IsCompound,
			Amount:     tax,
		})
	}
	effective := decimal.Zero
	if !subtotal.IsZero() {
		effective = total.Mul(hundred).Div(subtotal)
	}
	return TaxComputation{Applied: applied, TaxTotal: total, EffectiveRatePct: effective}
}
