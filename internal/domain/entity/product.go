package entity

// Product es el producto tal como lo consume el motor de precios (inmutable durante una cotización).
// TaxClassID vacío significa producto sin clase tributaria (no se aplican impuestos).
type Product struct {
	ID             string
	OrganizationID string
	Name           string
	DefaultUnitID  string
	TaxClassID     string
	Variants       []Variant
}

// Variant es una variante del producto (talla, color...). Una línea resuelve a lo sumo una variante.
type Variant struct {
	ID         string
	ProductID  string
	Attributes map[string]string
}

// FindVariant busca una variante propia del producto por ID.
func (p *Product) FindVariant(id string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}
