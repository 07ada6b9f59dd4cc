package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// Escalas de salida: unidad menor de las monedas soportadas y precisión de tasas.
const (
	MoneyScale int32 = 2
	RateScale  int32 = 4
)

// AssembleInput piezas ya resueltas por las etapas anteriores.
type AssembleInput struct {
	Product   *entity.Product
	VariantID string
	PriceBook *entity.PriceBook
	Tier      *entity.PriceBookEntry
	UnitID    string
	Quantity  decimal.Decimal
	AsOf      time.Time
	Amounts   LineAmounts
}

// Assemble redondea (half-up, una sola vez) y empaqueta la línea.
// Las identidades subtotal + impuesto == total se mantienen sobre los valores redondeados:
// en EXCLUSIVE el total se deriva; en INCLUSIVE el impuesto se deriva del bruto.
func Assemble(in AssembleInput) *entity.PriceQuote {
	a := in.Amounts
	subtotal := roundMoney(a.Subtotal)
	var tax, total decimal.Decimal
	if a.Basis == entity.PriceBasisInclusive {
		total = roundMoney(a.Total)
		tax = total.Sub(subtotal)
	} else {
		tax = roundMoney(a.TaxAmount)
		total = subtotal.Add(tax)
	}

	taxes := make([]entity.AppliedTax, len(a.Taxes))
	for i, t := range a.Taxes {
		t.Amount = roundMoney(t.Amount)
		taxes[i] = t
	}

	var discount *decimal.Decimal
	if in.Tier.DiscountPct != nil {
		d := *in.Tier.DiscountPct
		discount = &d
	}

	return &entity.PriceQuote{
		ProductID:           in.Product.ID,
		VariantID:           in.VariantID,
		PriceBookID:         in.PriceBook.ID,
		PriceEntryID:        in.Tier.ID,
		UnitID:              in.UnitID,
		Quantity:            in.Quantity,
		Basis:               a.Basis,
		Currency:            in.PriceBook.Currency,
		UnitPrice:           roundMoney(a.UnitPrice),
		DiscountPct:         discount,
		Taxes:               taxes,
		TaxAmount:           tax,
		EffectiveTaxRatePct: a.EffectiveRatePct.Round(RateScale),
		LineSubtotal:        subtotal,
		LineTotal:           total,
		AsOf:                in.AsOf,
	}
}

// decimal.Round redondea la mitad alejándose de cero: para montos no negativos es half-up.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}
