package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipToRequest destino de envío para resolver la jurisdicción tributaria.
type ShipToRequest struct {
	Country string `json:"country" validate:"omitempty,min=2,max=3"`
	Region  string `json:"region,omitempty" validate:"omitempty,max=64"`
	Postal  string `json:"postal,omitempty" validate:"omitempty,max=32"`
}

// PriceQuoteRequest body para POST /api/pricing/quote (la organización sale del token).
type PriceQuoteRequest struct {
	ProductID   string          `json:"product_id" validate:"required,max=64"`
	VariantID   string          `json:"variant_id,omitempty" validate:"omitempty,max=64"`
	PriceBookID string          `json:"price_book_id,omitempty" validate:"omitempty,max=64"`
	UnitID      string          `json:"unit_id,omitempty" validate:"omitempty,max=64"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"25"`
	AsOf        *time.Time      `json:"as_of,omitempty"`
	ShipTo      *ShipToRequest  `json:"ship_to,omitempty"`
}

// BatchQuoteRequest body para POST /api/pricing/quotes.
type BatchQuoteRequest struct {
	Lines []PriceQuoteRequest `json:"lines" validate:"required,min=1,dive"`
}

// AppliedTaxResponse regla aplicada, en orden de aplicación. Montos como string decimal fijo.
type AppliedTaxResponse struct {
	RuleID     string `json:"rule_id"`
	Name       string `json:"name"`
	RatePct    string `json:"rate_pct"`
	IsCompound bool   `json:"is_compound"`
	Amount     string `json:"amount"`
}

// PriceQuoteResponse línea cotizada. Ningún monto viaja como float.
type PriceQuoteResponse struct {
	ProductID           string               `json:"product_id"`
	VariantID           string               `json:"variant_id,omitempty"`
	PriceBookID         string               `json:"price_book_id"`
	PriceEntryID        string               `json:"price_entry_id"`
	UnitID              string               `json:"unit_id,omitempty"`
	Quantity            string               `json:"quantity"`
	Basis               string               `json:"basis"`
	Currency            string               `json:"currency"`
	UnitPrice           string               `json:"unit_price"`
	DiscountPct         *string              `json:"discount_pct,omitempty"`
	Taxes               []AppliedTaxResponse `json:"taxes"`
	TaxAmount           string               `json:"tax_amount"`
	EffectiveTaxRatePct string               `json:"effective_tax_rate_pct"`
	LineSubtotal        string               `json:"line_subtotal"`
	LineTotal           string               `json:"line_total"`
	AsOf                time.Time            `json:"as_of"`
}

// PriceQuoteResult resultado etiquetado: OK con Line, o Error con código estable.
type PriceQuoteResult struct {
	OK    bool                `json:"ok"`
	Line  *PriceQuoteResponse `json:"line,omitempty"`
	Error *ErrorResponse      `json:"error,omitempty"`
}

// BatchQuoteResponse resultados en el mismo orden de las líneas recibidas.
type BatchQuoteResponse struct {
	Results []PriceQuoteResult `json:"results"`
}
