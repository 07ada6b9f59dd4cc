package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	pricingengine "github.com/jhoicas/Precios-api/internal/domain/pricing"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

// QuoteUseCase lee productos, listas, escalones y reglas desde los repositorios y
// delega el cálculo al motor puro (internal/domain/pricing).
type QuoteUseCase struct {
	repos    Repositories
	snapshot SnapshotRunner
	observer QuoteObserver
	log      *logger.Logger
	cfg      Config
	now      func() time.Time
}

// NewQuoteUseCase construye el caso de uso.
// snapshot, observer y log pueden ser nil; sin snapshot se lee directo de repos.
func NewQuoteUseCase(
	repos Repositories,
	snapshot SnapshotRunner,
	observer QuoteObserver,
	log *logger.Logger,
	cfg Config,
) *QuoteUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteUseCase{
		repos:    repos,
		snapshot: snapshot,
		observer: observer,
		log:      log.Named("pricing"),
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado cuando la solicitud no trae as_of.
func (uc *QuoteUseCase) WithClock(now func() time.Time) *QuoteUseCase {
	uc.now = now
	return uc
}

// Quote cotiza una línea. Los errores son los del dominio (ErrProductNotFound, ErrNoPriceTier...)
// o un *domain.PricingError.
func (uc *QuoteUseCase) Quote(ctx context.Context, organizationID string, in dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error) {
	q, err := uc.quote(ctx, toEntityRequest(organizationID, in))
	if err != nil {
		return nil, err
	}
	return toResponse(q), nil
}

// QuoteBatch cotiza varias líneas en paralelo y devuelve los resultados en el orden recibido.
// La falla de una línea queda en su posición y no cancela las demás.
func (uc *QuoteUseCase) QuoteBatch(ctx context.Context, organizationID string, lines []dto.PriceQuoteRequest) ([]dto.PriceQuoteResult, error) {
	if len(lines) == 0 || len(lines) > uc.cfg.MaxBatchLines {
		return nil, domain.ErrInvalidInput
	}
	results := make([]dto.PriceQuoteResult, len(lines))
	var g errgroup.Group
	g.SetLimit(uc.cfg.BatchConcurrency)
	for i := range lines {
		g.Go(func() error {
			line, err := uc.Quote(ctx, organizationID, lines[i])
			if err != nil {
				results[i] = dto.PriceQuoteResult{
					Error: &dto.ErrorResponse{Code: domain.ErrorCode(err), Message: err.Error()},
				}
				return nil
			}
			results[i] = dto.PriceQuoteResult{OK: true, Line: line}
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

func (uc *QuoteUseCase) quote(ctx context.Context, req entity.PriceQuoteRequest) (q *entity.PriceQuote, err error) {
	start := time.Now()
	basis := ""
	defer func() {
		outcome := "OK"
		if err != nil {
			outcome = domain.ErrorCode(err)
			uc.log.Warn().Err(err).
				Str("error_code", outcome).
				Str("organization_id", req.OrganizationID).
				Str("product_id", req.ProductID).
				Msg("cotización rechazada")
		}
		uc.observer.ObserveQuote(outcome, basis, time.Since(start))
	}()

	if !req.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	var in *pricingengine.QuoteInput
	if uc.snapshot == nil {
		in, err = uc.load(ctx, uc.repos, req)
	} else {
		err = uc.snapshot.RunSnapshot(ctx, func(repos Repositories) error {
			var loadErr error
			in, loadErr = uc.load(ctx, repos, req)
			return loadErr
		})
	}
	if err != nil {
		return nil, asPricingError(err)
	}
	basis = string(in.PriceBook.Basis.Normalize())

	q, err = pricingengine.Price(*in)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().
		Str("organization_id", req.OrganizationID).
		Str("product_id", q.ProductID).
		Str("price_book_id", q.PriceBookID).
		Str("price_entry_id", q.PriceEntryID).
		Str("basis", string(q.Basis)).
		Str("line_total", q.LineTotal.StringFixed(pricingengine.MoneyScale)).
		Time("as_of", q.AsOf).
		Msg("línea cotizada")
	return q, nil
}

// load lee todo lo que el motor necesita. Fallas de lectura se envuelven en PricingError.
func (uc *QuoteUseCase) load(ctx context.Context, repos Repositories, req entity.PriceQuoteRequest) (*pricingengine.QuoteInput, error) {
	product, err := repos.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, domain.NewPricingError("leer producto", err)
	}
	if product == nil || product.OrganizationID != req.OrganizationID {
		return nil, domain.ErrProductNotFound
	}

	book, err := resolvePriceBook(ctx, repos.PriceBooks, req)
	if err != nil {
		return nil, err
	}

	entries, err := repos.Entries.ListForProduct(ctx, book.ID, product.ID, req.VariantID)
	if err != nil {
		return nil, domain.NewPricingError("leer escalones", err)
	}

	var rules []entity.TaxRule
	if product.TaxClassID != "" {
		rules, err = repos.TaxRules.ListByTaxClass(ctx, product.TaxClassID)
		if err != nil {
			return nil, domain.NewPricingError("leer reglas tributarias", err)
		}
	}

	asOf := uc.now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	return &pricingengine.QuoteInput{
		Request:   req,
		Product:   product,
		PriceBook: book,
		Entries:   entries,
		TaxRules:  rules,
		AsOf:      asOf,
	}, nil
}

// resolvePriceBook consulta las predeterminadas solo si la explícita no resuelve.
func resolvePriceBook(ctx context.Context, books repository.PriceBookRepository, req entity.PriceQuoteRequest) (*entity.PriceBook, error) {
	var explicit *entity.PriceBook
	if req.PriceBookID != "" {
		pb, err := books.GetByID(ctx, req.PriceBookID)
		if err != nil {
			return nil, domain.NewPricingError("leer lista de precios", err)
		}
		explicit = pb
	}
	book, err := pricingengine.ResolvePriceBook(req.OrganizationID, explicit, nil)
	if err == nil {
		return book, nil
	}
	defaults, err := books.ListDefaults(ctx, req.OrganizationID)
	if err != nil {
		return nil, domain.NewPricingError("leer listas predeterminadas", err)
	}
	return pricingengine.ResolvePriceBook(req.OrganizationID, explicit, defaults)
}

// asPricingError deja pasar errores del motor y PricingError; el resto (ej. begin/commit) se envuelve.
func asPricingError(err error) error {
	var pe *domain.PricingError
	if domain.ErrorCode(err) != domain.CodePricingError || errors.As(err, &pe) {
		return err
	}
	return domain.NewPricingError("instantánea de lectura", err)
}
