package pricing_test

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
)

func compound(id, rate string) entity.TaxRule {
	r := rule(id, rate)
	r.IsCompound = true
	return r
}

func TestCompoundTaxes_CompuestaSobreBaseAmpliada(t *testing.T) {
	// Compuesta primero en la entrada: el orden de aplicación no depende del orden recibido.
	rules := []entity.TaxRule{compound("comp-5", "5"), rule("simple-21", "21")}

	got := pricing.CompoundTaxes(rules, dec("100"))

	assertDecimal(t, "27.05", got.TaxTotal, "21 + (100+21) × 5% = 27.05")
	assertDecimal(t, "27.05", got.EffectiveRatePct)
	require.Len(t, got.Applied, 2)
	assert.Equal(t, "simple-21", got.Applied[0].RuleID, "las simples se aplican primero")
	assertDecimal(t, "21", got.Applied[0].Amount)
	assert.Equal(t, "comp-5", got.Applied[1].RuleID)
	assertDecimal(t, "6.05", got.Applied[1].Amount)
	assert.True(t, got.Applied[1].Amount.GreaterThan(dec("5")), "la compuesta grava una base mayor que la simple sola")
}

func TestCompoundTaxes_SimplesSobreBaseOriginal(t *testing.T) {
	rules := []entity.TaxRule{rule("a", "10"), rule("b", "5")}

	got := pricing.CompoundTaxes(rules, dec("200"))

	assertDecimal(t, "30", got.TaxTotal)
	assertDecimal(t, "20", got.Applied[0].Amount)
	assertDecimal(t, "10", got.Applied[1].Amount)
}

func TestCompoundTaxes_CompuestasEncadenadas(t *testing.T) {
	rules := []entity.TaxRule{compound("c1", "10"), compound("c2", "10")}

	got := pricing.CompoundTaxes(rules, dec("100"))

	assertDecimal(t, "21", got.TaxTotal, "10 + 110 × 10% = 21")
}

func TestCompoundTaxes_OrdenPorPrioridadDentroDelGrupo(t *testing.T) {
	low := compound("c-low", "2")
	low.Priority = 1
	high := compound("c-high", "3")
	high.Priority = 0
	simple := rule("s", "1")
	simple.Priority = 9

	got := pricing.CompoundTaxes([]entity.TaxRule{low, simple, high}, dec("100"))

	ids := lo.Map(got.Applied, func(a entity.AppliedTax, _ int) string { return a.RuleID })
	assert.Equal(t, []string{"s", "c-high", "c-low"}, ids)
}

func TestCompoundTaxes_SubtotalCero(t *testing.T) {
	rules := []entity.TaxRule{rule("a", "21"), compound("b", "5")}

	var got pricing.TaxComputation
	assert.NotPanics(t, func() {
		got = pricing.CompoundTaxes(rules, dec("0"))
	}, "subtotal cero nunca debe dividir por cero")

	assertDecimal(t, "0", got.TaxTotal)
	assertDecimal(t, "0", got.EffectiveRatePct)
}

func TestCompoundTaxes_SinReglas(t *testing.T) {
	got := pricing.CompoundTaxes(nil, dec("100"))

	assertDecimal(t, "0", got.TaxTotal)
	assertDecimal(t, "0", got.EffectiveRatePct)
	assert.Empty(t, got.Applied)
}

func TestOrderTaxRules_PrioridadesExtremas(t *testing.T) {
	high := rule("b-high", "1")
	high.Priority = math.MaxInt
	low := rule("a-low", "1")
	low.Priority = math.MinInt

	ordered := pricing.OrderTaxRules([]entity.TaxRule{high, low})

	require.Len(t, ordered, 2)
	assert.Equal(t, "a-low", ordered[0].ID, "MinInt va antes que MaxInt sin desbordar")
}
