package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ApplyDiscount devuelve base × (100 − pct) / 100, o base si no hay descuento.
// El rango 0..100 se valida aguas arriba. No redondea.
func ApplyDiscount(base decimal.Decimal, discountPct *decimal.Decimal) decimal.Decimal {
	if discountPct == nil {
		return base
	}
	return base.Mul(hundred.Sub(*discountPct)).Div(hundred)
}
