package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxClass agrupa reglas tributarias; un producto referencia una clase.
type TaxClass struct {
	ID             string
	OrganizationID string
	Name           string
}

// TaxRule es una regla tributaria de una clase. Country/Region/PostalPattern vacíos no restringen.
// PostalPattern es un glob con comodín '*' (ej. "10*").
type TaxRule struct {
	ID            string
	TaxClassID    string
	Name          string
	RatePct       decimal.Decimal // 0..100
	Country       string
	Region        string
	PostalPattern string
	IsCompound    bool
	Priority      int
	IsActive      bool
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// EffectiveAt indica si la regla está activa y vigente en asOf (no en la hora del reloj).
func (r *TaxRule) EffectiveAt(asOf time.Time) bool {
	return r.IsActive && withinWindow(r.ValidFrom, r.ValidTo, asOf)
}

// ShipTo destino de envío de la línea; no se persiste.
type ShipTo struct {
	Country string
	Region  string
	Postal  string
}
