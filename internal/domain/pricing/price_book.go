package pricing

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// ResolvePriceBook elige la lista de precios de la cotización.
// Usa la lista explícita si está activa y pertenece a la organización; si no, la lista
// predeterminada activa más reciente (empate: ID ascendente). Sin ninguna: ErrNoActivePriceBook.
func ResolvePriceBook(organizationID string, explicit *entity.PriceBook, defaults []entity.PriceBook) (*entity.PriceBook, error) {
	if explicit != nil && explicit.IsActive && explicit.OrganizationID == organizationID {
		book := *explicit
		return &book, nil
	}
	candidates := lo.Filter(defaults, func(b entity.PriceBook, _ int) bool {
		return b.IsActive && b.IsDefault && b.OrganizationID == organizationID
	})
	if len(candidates) == 0 {
		return nil, domain.ErrNoActivePriceBook
	}
	slices.SortFunc(candidates, func(a, b entity.PriceBook) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	book := candidates[0]
	return &book, nil
}
