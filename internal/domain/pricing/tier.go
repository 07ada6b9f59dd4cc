package pricing

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// TierQuery parámetros de selección de escalón.
type TierQuery struct {
	PriceBookID string
	ProductID   string
	VariantID   string
	UnitID      string // override de unidad; vacío = cualquiera
	Quantity    decimal.Decimal
	AsOf        time.Time
}

// SelectTier elige el escalón más específico para la cantidad y fecha:
// filtra por lista, producto/variante, vigencia, rango de cantidad y unidad; ordena por MinQty
// descendente y luego ID ascendente; toma el primero. Nunca cae a precios de otro producto.
func SelectTier(entries []entity.PriceBookEntry, q TierQuery) (*entity.PriceBookEntry, error) {
	candidates := lo.Filter(entries, func(e entity.PriceBookEntry, _ int) bool {
		return e.PriceBookID == q.PriceBookID &&
			appliesTo(e, q.ProductID, q.VariantID) &&
			e.ValidAt(q.AsOf) &&
			e.CoversQuantity(q.Quantity) &&
			unitCompatible(e.UnitID, q.UnitID)
	})
	if len(candidates) == 0 {
		return nil, domain.ErrNoPriceTier
	}
	slices.SortFunc(candidates, func(a, b entity.PriceBookEntry) int {
		if c := b.MinQtyOrZero().Cmp(a.MinQtyOrZero()); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	tier := candidates[0]
	return &tier, nil
}

// appliesTo: escalón del producto sin variante, o de la variante solicitada.
func appliesTo(e entity.PriceBookEntry, productID, variantID string) bool {
	if e.VariantID == "" {
		return e.ProductID == productID
	}
	return variantID != "" && e.VariantID == variantID
}

func unitCompatible(entryUnit, requested string) bool {
	return requested == "" || entryUnit == "" || entryUnit == requested
}
