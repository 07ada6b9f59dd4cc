package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
)

func TestNormalizeBasis_Exclusiva(t *testing.T) {
	got := pricing.NormalizeBasis(entity.PriceBasisExclusive, dec("50"), dec("2"), []entity.TaxRule{rule("iva", "21")})

	assert.Equal(t, entity.PriceBasisExclusive, got.Basis)
	assertDecimal(t, "50", got.UnitPrice)
	assertDecimal(t, "100", got.Subtotal)
	assertDecimal(t, "21", got.TaxAmount)
	assertDecimal(t, "121", got.Total)
	assertDecimal(t, "21", got.EffectiveRatePct)
}

func TestNormalizeBasis_InclusivaIdaYVuelta(t *testing.T) {
	got := pricing.NormalizeBasis(entity.PriceBasisInclusive, dec("121"), dec("1"), []entity.TaxRule{rule("iva", "21")})

	assertDecimal(t, "121", got.Total, "el bruto no cambia al agregar impuestos")
	assertDecimal(t, "100", got.Subtotal)
	assertDecimal(t, "21", got.TaxAmount)
	assertDecimal(t, "21", got.EffectiveRatePct)
	assert.True(t, got.Subtotal.Add(got.TaxAmount).Equal(got.Total), "neto + impuesto == bruto")

	rederived := got.TaxAmount.Div(got.Subtotal).Mul(dec("100"))
	assertDecimal(t, "21", rederived, "impuesto / neto × 100 reproduce la tasa configurada")
}

func TestNormalizeBasis_InclusivaConCompuesta(t *testing.T) {
	rules := []entity.TaxRule{rule("simple-21", "21"), compound("comp-5", "5")}

	got := pricing.NormalizeBasis(entity.PriceBasisInclusive, dec("127.05"), dec("1"), rules)

	assertDecimal(t, "100", got.Subtotal)
	assertDecimal(t, "27.05", got.TaxAmount)
	assertDecimal(t, "127.05", got.Total)
	assertDecimal(t, "27.05", got.EffectiveRatePct)
	assertDecimal(t, "21", got.Taxes[0].Amount, "el desglose se calcula sobre el neto")
	assertDecimal(t, "6.05", got.Taxes[1].Amount)
}

func TestNormalizeBasis_InclusivaPrecioUnitarioNeto(t *testing.T) {
	got := pricing.NormalizeBasis(entity.PriceBasisInclusive, dec("12.10"), dec("10"), []entity.TaxRule{rule("iva", "21")})

	assertDecimal(t, "10", got.UnitPrice)
	assertDecimal(t, "100", got.Subtotal)
	assertDecimal(t, "121", got.Total)
}

func TestNormalizeBasis_SinBaseEsExclusiva(t *testing.T) {
	got := pricing.NormalizeBasis(entity.PriceBasis(""), dec("10"), dec("1"), []entity.TaxRule{rule("iva", "10")})

	assert.Equal(t, entity.PriceBasisExclusive, got.Basis)
	assertDecimal(t, "11", got.Total)

	got = pricing.NormalizeBasis(entity.PriceBasis("GROSS"), dec("10"), dec("1"), nil)
	assert.Equal(t, entity.PriceBasisExclusive, got.Basis, "valores desconocidos no hacen fallar la cotización")
}

func TestNormalizeBasis_InclusivaBrutoCero(t *testing.T) {
	got := pricing.NormalizeBasis(entity.PriceBasisInclusive, dec("0"), dec("3"), []entity.TaxRule{rule("iva", "21")})

	assertDecimal(t, "0", got.Subtotal)
	assertDecimal(t, "0", got.TaxAmount)
	assertDecimal(t, "0", got.EffectiveRatePct)
}
