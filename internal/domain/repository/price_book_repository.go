package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// PriceBookRepository puerto de lectura de listas de precios.
type PriceBookRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.PriceBook, error)
	// ListDefaults devuelve las listas activas marcadas como predeterminadas de la organización.
	ListDefaults(ctx context.Context, organizationID string) ([]entity.PriceBook, error)
}

// PriceBookEntryRepository puerto de lectura de escalones.
type PriceBookEntryRepository interface {
	// ListForProduct devuelve los escalones de la lista que aplican al producto (sin variante)
	// o a la variante indicada (si variantID no es vacío).
	ListForProduct(ctx context.Context, priceBookID, productID, variantID string) ([]entity.PriceBookEntry, error)
}
