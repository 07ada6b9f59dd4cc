package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuoteRequest solicitud de cotización de una línea.
// Los IDs opcionales van vacíos; AsOf nil significa "ahora".
type PriceQuoteRequest struct {
	OrganizationID string
	ProductID      string
	VariantID      string
	PriceBookID    string
	UnitID         string
	Quantity       decimal.Decimal
	AsOf           *time.Time
	ShipTo         *ShipTo
}

// AppliedTax regla aplicada a la línea, en el orden de aplicación.
type AppliedTax struct {
	RuleID     string
	Name       string
	RatePct    decimal.Decimal
	IsCompound bool
	Amount     decimal.Decimal
}

// PriceQuote línea resuelta. Inmutable una vez ensamblada; montos ya redondeados.
type PriceQuote struct {
	ProductID           string
	VariantID           string
	PriceBookID         string
	PriceEntryID        string
	UnitID              string
	Quantity            decimal.Decimal
	Basis               PriceBasis
	Currency            string
	UnitPrice           decimal.Decimal // neto de descuento, sin impuestos
	DiscountPct         *decimal.Decimal
	Taxes               []AppliedTax
	TaxAmount           decimal.Decimal
	EffectiveTaxRatePct decimal.Decimal
	LineSubtotal        decimal.Decimal // sin impuestos
	LineTotal           decimal.Decimal // con impuestos
	AsOf                time.Time
}
