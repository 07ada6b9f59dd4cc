package http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

// quoter es el contrato que necesita el handler; lo implementa *pricing.QuoteUseCase.
type quoter interface {
	Quote(ctx context.Context, organizationID string, in dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error)
	QuoteBatch(ctx context.Context, organizationID string, lines []dto.PriceQuoteRequest) ([]dto.PriceQuoteResult, error)
}

// PricingHandler maneja las peticiones HTTP de cotización (protegido).
type PricingHandler struct {
	uc       quoter
	validate *validator.Validate
	log      *logger.Logger
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc quoter, log *logger.Logger) *PricingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PricingHandler{uc: uc, validate: validator.New(), log: log.Named("http")}
}

// Quote godoc
// @Summary      Cotizar una línea
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceQuoteRequest  true  "Línea a cotizar"
// @Success      200   {object}  dto.PriceQuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.PriceQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Quote(c.UserContext(), orgID, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// QuoteBatch godoc
// @Summary      Cotizar varias líneas
// @Description  Cada línea se resuelve de forma independiente; los resultados respetan el orden recibido.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchQuoteRequest  true  "Líneas a cotizar"
// @Success      200   {object}  dto.BatchQuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/quotes [post]
func (h *PricingHandler) QuoteBatch(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.BatchQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	results, err := h.uc.QuoteBatch(c.UserContext(), orgID, in.Lines)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad de líneas fuera del límite permitido"})
		}
		return h.fail(c, err)
	}
	for i := range results {
		if e := results[i].Error; e != nil {
			e.Message = publicMessage(e.Code)
		}
	}
	return c.JSON(dto.BatchQuoteResponse{Results: results})
}

// fail traduce errores del motor a status HTTP. El detalle de PricingError solo va al log.
func (h *PricingHandler) fail(c *fiber.Ctx, err error) error {
	code := domain.ErrorCode(err)
	status := statusFor(code)
	if status == fiber.StatusInternalServerError {
		h.log.Error().Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("path", c.Path()).
			Msg("cotización fallida")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: publicMessage(code)})
}

func statusFor(code string) int {
	switch code {
	case domain.CodeInvalidQuantity:
		return fiber.StatusBadRequest
	case domain.CodeProductNotFound:
		return fiber.StatusNotFound
	case domain.CodeNoActivePriceBook, domain.CodeNoPriceTier:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func publicMessage(code string) string {
	switch code {
	case domain.CodeInvalidQuantity:
		return "la cantidad debe ser mayor que cero"
	case domain.CodeProductNotFound:
		return "producto no encontrado"
	case domain.CodeNoActivePriceBook:
		return "la organización no tiene una lista de precios activa"
	case domain.CodeNoPriceTier:
		return "ningún precio aplica a la cantidad, unidad o fecha solicitadas"
	default:
		return "no se pudo calcular el precio, intente más tarde"
	}
}
