package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Errores del motor de precios. Ninguno es reintentable: indican datos o configuración inconsistentes.
var (
	ErrProductNotFound   = errors.New("producto no encontrado para la organización")
	ErrNoActivePriceBook = errors.New("no hay lista de precios activa")
	ErrNoPriceTier       = errors.New("ningún escalón de precio aplica a la cantidad o fecha")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
)

// Códigos estables para el llamador (API/UI); el motor no redacta mensajes para el usuario final.
const (
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeNoActivePriceBook = "NO_ACTIVE_PRICE_BOOK"
	CodeNoPriceTier       = "NO_PRICE_TIER"
	CodeInvalidQuantity   = "INVALID_QUANTITY"
	CodePricingError      = "PRICING_ERROR"
)

// PricingError es el error genérico del motor: cualquier falla inesperada (ej. lectura de repositorio).
// Siempre lleva un mensaje legible.
type PricingError struct {
	Message string
	Err     error
}

// NewPricingError construye un PricingError envolviendo la causa (puede ser nil).
func NewPricingError(message string, err error) *PricingError {
	return &PricingError{Message: message, Err: err}
}

func (e *PricingError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *PricingError) Unwrap() error { return e.Err }

// ErrorCode traduce un error del motor a su código estable. Errores desconocidos son PRICING_ERROR.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrNoActivePriceBook):
		return CodeNoActivePriceBook
	case errors.Is(err, ErrNoPriceTier):
		return CodeNoPriceTier
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	default:
		return CodePricingError
	}
}
