package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// QuoteInput datos ya leídos del almacenamiento para cotizar una línea.
// PriceBook es la lista ya resuelta (ver ResolvePriceBook). AsOf es obligatorio.
type QuoteInput struct {
	Request   entity.PriceQuoteRequest
	Product   *entity.Product
	PriceBook *entity.PriceBook
	Entries   []entity.PriceBookEntry
	TaxRules  []entity.TaxRule
	AsOf      time.Time
}

// Price ejecuta escalón → descuento → impuestos → base → ensamblado.
// Es una función pura: mismas entradas (incluido AsOf) producen siempre el mismo resultado.
// Retorna el primer error de cualquier etapa, sin resultados parciales.
func Price(in QuoteInput) (*entity.PriceQuote, error) {
	req := in.Request
	if !req.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Product == nil || in.Product.OrganizationID != req.OrganizationID {
		return nil, domain.ErrProductNotFound
	}
	if req.VariantID != "" {
		if _, ok := in.Product.FindVariant(req.VariantID); !ok {
			return nil, domain.ErrProductNotFound
		}
	}
	if in.PriceBook == nil {
		return nil, domain.ErrNoActivePriceBook
	}

	tier, err := SelectTier(in.Entries, TierQuery{
		PriceBookID: in.PriceBook.ID,
		ProductID:   in.Product.ID,
		VariantID:   req.VariantID,
		UnitID:      req.UnitID,
		Quantity:    req.Quantity,
		AsOf:        in.AsOf,
	})
	if err != nil {
		return nil, err
	}

	unitPrice := ApplyDiscount(tier.UnitPrice, tier.DiscountPct)
	rules := MatchTaxRules(in.TaxRules, in.AsOf, req.ShipTo)
	amounts := NormalizeBasis(in.PriceBook.Basis, unitPrice, req.Quantity, rules)

	return Assemble(AssembleInput{
		Product:   in.Product,
		VariantID: req.VariantID,
		PriceBook: in.PriceBook,
		Tier:      tier,
		UnitID:    resolveUnit(req.UnitID, tier.UnitID, in.Product.DefaultUnitID),
		Quantity:  req.Quantity,
		AsOf:      in.AsOf,
		Amounts:   amounts,
	}), nil
}

func resolveUnit(candidates ...string) string {
	for _, u := range candidates {
		if u != "" {
			return u
		}
	}
	return ""
}
