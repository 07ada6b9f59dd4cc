package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBasis indica si los precios guardados excluyen o incluyen impuestos.
type PriceBasis string

const (
	PriceBasisExclusive PriceBasis = "EXCLUSIVE"
	PriceBasisInclusive PriceBasis = "INCLUSIVE"
)

// Normalize devuelve la base efectiva: cualquier valor ausente o desconocido es EXCLUSIVE.
func (b PriceBasis) Normalize() PriceBasis {
	if b == PriceBasisInclusive {
		return PriceBasisInclusive
	}
	return PriceBasisExclusive
}

// PriceBook lista de precios de una organización, en una sola moneda.
type PriceBook struct {
	ID             string
	OrganizationID string
	Name           string
	Currency       string // ISO 4217
	Basis          PriceBasis
	IsActive       bool
	IsDefault      bool
	CreatedAt      time.Time
}

// PriceBookEntry es un escalón (tier) de una lista de precios.
// Referencia ProductID o VariantID (exactamente uno). Los límites nil no restringen.
// La vigencia es semiabierta: ValidFrom <= t < ValidTo.
type PriceBookEntry struct {
	ID          string
	PriceBookID string
	ProductID   string
	VariantID   string
	UnitPrice   decimal.Decimal
	DiscountPct *decimal.Decimal // 0..100
	MinQty      *decimal.Decimal
	MaxQty      *decimal.Decimal
	ValidFrom   *time.Time
	ValidTo     *time.Time
	UnitID      string
}

// ValidAt indica si el escalón está vigente en asOf.
func (e *PriceBookEntry) ValidAt(asOf time.Time) bool {
	return withinWindow(e.ValidFrom, e.ValidTo, asOf)
}

// CoversQuantity indica si qty cae dentro de [MinQty, MaxQty] (ambos inclusivos).
func (e *PriceBookEntry) CoversQuantity(qty decimal.Decimal) bool {
	if e.MinQty != nil && qty.LessThan(*e.MinQty) {
		return false
	}
	if e.MaxQty != nil && qty.GreaterThan(*e.MaxQty) {
		return false
	}
	return true
}

// MinQtyOrZero devuelve MinQty, o 0 si el escalón no tiene mínimo.
func (e *PriceBookEntry) MinQtyOrZero() decimal.Decimal {
	if e.MinQty == nil {
		return decimal.Zero
	}
	return *e.MinQty
}

func withinWindow(from, to *time.Time, t time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}
