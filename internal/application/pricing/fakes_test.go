package pricing_test

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	apppricing "github.com/jhoicas/Precios-api/internal/application/pricing"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// memStore implementa los cuatro puertos de lectura en memoria.
type memStore struct {
	mu           sync.Mutex
	products     map[string]*entity.Product
	books        map[string]*entity.PriceBook
	entries      []entity.PriceBookEntry
	rules        map[string][]entity.TaxRule
	failWith     error
	defaultCalls int
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		books:    map[string]*entity.PriceBook{},
		rules:    map[string][]entity.TaxRule{},
	}
}

func (m *memStore) GetByIDProduct(_ context.Context, id string) (*entity.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.products[id], nil
}

func (m *memStore) ListForProduct(_ context.Context, priceBookID, productID, variantID string) ([]entity.PriceBookEntry, error) {
	return lo.Filter(m.entries, func(e entity.PriceBookEntry, _ int) bool {
		if e.PriceBookID != priceBookID {
			return false
		}
		return (e.ProductID == productID && e.VariantID == "") || (variantID != "" && e.VariantID == variantID)
	}), nil
}

func (m *memStore) ListByTaxClass(_ context.Context, taxClassID string) ([]entity.TaxRule, error) {
	return m.rules[taxClassID], nil
}

// productRepo y bookRepo adaptan memStore a los puertos con métodos homónimos.
type productRepo struct{ *memStore }

func (r productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByIDProduct(ctx, id)
}

type bookRepo struct{ *memStore }

func (r bookRepo) GetByID(_ context.Context, id string) (*entity.PriceBook, error) {
	return r.books[id], nil
}

func (r bookRepo) ListDefaults(_ context.Context, organizationID string) ([]entity.PriceBook, error) {
	r.mu.Lock()
	r.defaultCalls++
	r.mu.Unlock()
	var out []entity.PriceBook
	for _, b := range r.books {
		if b.OrganizationID == organizationID && b.IsDefault && b.IsActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

// recordingObserver guarda los outcomes observados.
type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveQuote(outcome, _ string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

// fakeSnapshot simula el runner de instantánea: cuenta llamadas o falla al abrir.
type fakeSnapshot struct {
	repos    apppricing.Repositories
	beginErr error
	calls    int
}

func (f *fakeSnapshot) RunSnapshot(_ context.Context, fn func(repos apppricing.Repositories) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.calls++
	return fn(f.repos)
}
