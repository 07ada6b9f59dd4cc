package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Precios-api/pkg/logger"
)

// Roles que pueden cotizar.
var quoteRoles = []string{"admin", "vendedor", "integracion"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC   quoter
	Metrics     prometheus.Gatherer // nil = sin /metrics
	Logger      *logger.Logger
	ServiceName string
	JWTSecret   string
	JWTIssuer   string // vacío = no se verifica el emisor
	DocsFile    string // swagger.json generado con `swag init`; vacío = sin /docs
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Swagger UI: http://localhost:<port>/docs
	if deps.DocsFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.DocsFile,
			Path:     "docs",
			Title:    "Precios API",
		}))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	pricing := protected.Group("/pricing", RequireRole(quoteRoles...))
	pricingHandler := NewPricingHandler(deps.PricingUC, deps.Logger)
	pricing.Post("/quote", pricingHandler.Quote)
	pricing.Post("/quotes", pricingHandler.QuoteBatch)
}
