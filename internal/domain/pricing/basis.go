package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// LineAmounts montos de la línea conciliados con la base de la lista (sin redondear).
type LineAmounts struct {
	Basis            entity.PriceBasis
	UnitPrice        decimal.Decimal // neto, sin impuestos
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	EffectiveRatePct decimal.Decimal
	Taxes            []entity.AppliedTax
}

// NormalizeBasis calcula subtotal, impuesto y total según la base de la lista.
//
// EXCLUSIVE: el precio es neto; total = subtotal + impuesto.
// INCLUSIVE: el precio ya incluye impuestos. Se compone sobre el bruto para obtener la tasa
// efectiva, neto = bruto / (1 + tasa/100), impuesto = bruto − neto y el total sigue siendo el bruto.
// El desglose por regla se recalcula sobre el neto con el mismo orden que en EXCLUSIVE.
// Una base vacía o desconocida se trata como EXCLUSIVE.
func NormalizeBasis(basis entity.PriceBasis, unitPrice, quantity decimal.Decimal, rules []entity.TaxRule) LineAmounts {
	basis = basis.Normalize()
	line := unitPrice.Mul(quantity)

	if basis == entity.PriceBasisExclusive {
		c := CompoundTaxes(rules, line)
		return LineAmounts{
			Basis:            basis,
			UnitPrice:        unitPrice,
			Subtotal:         line,
			TaxAmount:        c.TaxTotal,
			Total:            line.Add(c.TaxTotal),
			EffectiveRatePct: c.EffectiveRatePct,
			Taxes:            c.Applied,
		}
	}

	gross := line
	onGross := CompoundTaxes(rules, gross)
	net := gross
	if !onGross.TaxTotal.IsZero() {
		// gross / (1 + tax/gross) == gross² / (gross + tax): una sola división.
		net = gross.Mul(gross).Div(gross.Add(onGross.TaxTotal))
	}
	onNet := CompoundTaxes(rules, net)
	unitNet := unitPrice
	if !quantity.IsZero() {
		unitNet = net.Div(quantity)
	}
	return LineAmounts{
		Basis:            basis,
		UnitPrice:        unitNet,
		Subtotal:         net,
		TaxAmount:        gross.Sub(net),
		Total:            gross,
		EffectiveRatePct: onGross.EffectiveRatePct,
		Taxes:            onNet.Applied,
	}
}
