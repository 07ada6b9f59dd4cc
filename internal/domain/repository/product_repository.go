package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos para el motor de precios (DIP).
// GetByID devuelve (nil, nil) si el producto no existe; incluye sus variantes.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
