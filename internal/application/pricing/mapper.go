package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	pricingengine "github.com/jhoicas/Precios-api/internal/domain/pricing"
)

func toEntityRequest(organizationID string, in dto.PriceQuoteRequest) entity.PriceQuoteRequest {
	req := entity.PriceQuoteRequest{
		OrganizationID: organizationID,
		ProductID:      in.ProductID,
		VariantID:      in.VariantID,
		PriceBookID:    in.PriceBookID,
		UnitID:         in.UnitID,
		Quantity:       in.Quantity,
		AsOf:           in.AsOf,
	}
	if in.ShipTo != nil {
		req.ShipTo = &entity.ShipTo{
			Country: in.ShipTo.Country,
			Region:  in.ShipTo.Region,
			Postal:  in.ShipTo.Postal,
		}
	}
	return req
}

func toResponse(q *entity.PriceQuote) *dto.PriceQuoteResponse {
	resp := &dto.PriceQuoteResponse{
		ProductID:           q.ProductID,
		VariantID:           q.VariantID,
		PriceBookID:         q.PriceBookID,
		PriceEntryID:        q.PriceEntryID,
		UnitID:              q.UnitID,
		Quantity:            q.Quantity.String(),
		Basis:               string(q.Basis),
		Currency:            q.Currency,
		UnitPrice:           money(q.UnitPrice),
		Taxes:               make([]dto.AppliedTaxResponse, 0, len(q.Taxes)),
		TaxAmount:           money(q.TaxAmount),
		EffectiveTaxRatePct: rate(q.EffectiveTaxRatePct),
		LineSubtotal:        money(q.LineSubtotal),
		LineTotal:           money(q.LineTotal),
		AsOf:                q.AsOf,
	}
	if q.DiscountPct != nil {
		d := rate(*q.DiscountPct)
		resp.DiscountPct = &d
	}
	for _, t := range q.Taxes {
		resp.Taxes = append(resp.Taxes, dto.AppliedTaxResponse{
			RuleID:     t.RuleID,
			Name:       t.Name,
			RatePct:    rate(t.RatePct),
			IsCompound: t.IsCompound,
			Amount:     money(t.Amount),
		})
	}
	return resp
}

func money(d decimal.Decimal) string { return d.StringFixed(pricingengine.MoneyScale) }

func rate(d decimal.Decimal) string { return d.StringFixed(pricingengine.RateScale) }
