package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var (
	_ repository.PriceBookRepository      = (*PriceBookRepo)(nil)
	_ repository.PriceBookEntryRepository = (*PriceBookEntryRepo)(nil)
)

const priceBookColumns = `id, organization_id, name, currency, basis, is_active, is_default, created_at`

// PriceBookRepo lectura de listas de precios.
type PriceBookRepo struct {
	q Querier
}

// NewPriceBookRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceBookRepository(q Querier) *PriceBookRepo {
	return &PriceBookRepo{q: q}
}

// GetByID obtiene una lista por ID. (nil, nil) si no existe.
func (r *PriceBookRepo) GetByID(ctx context.Context, id string) (*entity.PriceBook, error) {
	row := r.q.QueryRow(ctx, `SELECT `+priceBookColumns+` FROM price_books WHERE id = $1`, id)
	pb, err := scanPriceBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price book: %w", err)
	}
	return pb, nil
}

// ListDefaults listas activas y predeterminadas de la organización, más recientes primero.
func (r *PriceBookRepo) ListDefaults(ctx context.Context, organizationID string) ([]entity.PriceBook, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+priceBookColumns+`
		FROM price_books
		WHERE organization_id = $1 AND is_active AND is_default
		ORDER BY created_at DESC, id`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list default price books: %w", err)
	}
	defer rows.Close()
	var list []entity.PriceBook
	for rows.Next() {
		pb, err := scanPriceBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price book: %w", err)
		}
		list = append(list, *pb)
	}
	return list, rows.Err()
}

func scanPriceBook(row pgx.Row) (*entity.PriceBook, error) {
	var (
		pb    entity.PriceBook
		basis *string
	)
	if err := row.Scan(&pb.ID, &pb.OrganizationID, &pb.Name, &pb.Currency, &basis,
		&pb.IsActive, &pb.IsDefault, &pb.CreatedAt); err != nil {
		return nil, err
	}
	// basis NULL se conserva vacío; el motor lo trata como EXCLUSIVE.
	pb.Basis = entity.PriceBasis(deref(basis))
	return &pb, nil
}

// PriceBookEntryRepo lectura de escalones.
type PriceBookEntryRepo struct {
	q Querier
}

// NewPriceBookEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceBookEntryRepository(q Querier) *PriceBookEntryRepo {
	return &PriceBookEntryRepo{q: q}
}

// ListForProduct escalones del producto (sin variante) o de la variante indicada.
func (r *PriceBookEntryRepo) ListForProduct(ctx context.Context, priceBookID, productID, variantID string) ([]entity.PriceBookEntry, error) {
	query := `
		SELECT id, price_book_id, product_id, variant_id, unit_price, discount_pct,
		       min_qty, max_qty, valid_from, valid_to, unit_id
		FROM price_book_entries
		WHERE price_book_id = $1
		  AND ((product_id = $2 AND variant_id IS NULL)
		       OR ($3::text <> '' AND variant_id = $3::text))
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, priceBookID, productID, variantID)
	if err != nil {
		return nil, fmt.Errorf("list price book entries: %w", err)
	}
	defer rows.Close()
	var list []entity.PriceBookEntry
	for rows.Next() {
		var (
			e                        entity.PriceBookEntry
			product, variant, unitID *string
		)
		if err := rows.Scan(&e.ID, &e.PriceBookID, &product, &variant, &e.UnitPrice, &e.DiscountPct,
			&e.MinQty, &e.MaxQty, &e.ValidFrom, &e.ValidTo, &unitID); err != nil {
			return nil, fmt.Errorf("scan price book entry: %w", err)
		}
		e.ProductID = deref(product)
		e.VariantID = deref(variant)
		e.UnitID = deref(unitID)
		list = append(list, e)
	}
	return list, rows.Err()
}
