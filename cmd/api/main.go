package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/Precios-api/docs"
	apppricing "github.com/jhoicas/Precios-api/internal/application/pricing"
	"github.com/jhoicas/Precios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Precios-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Precios-api/internal/interfaces/http"
	"github.com/jhoicas/Precios-api/pkg/config"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

// @title          Precios API
// @version        1.0
// @description    Motor de cotización de líneas: lista de precios, escalones, descuentos e impuestos.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	quoteObserver, err := metrics.NewQuoteObserver(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	// Sin instantánea cada repositorio lee del pool por separado.
	var snapshot apppricing.SnapshotRunner
	if cfg.Pricing.ReadSnapshot {
		snapshot = postgres.NewSnapshotRunner(pool)
	}
	pricingUC := apppricing.NewQuoteUseCase(
		postgres.Repositories(pool),
		snapshot,
		quoteObserver,
		log,
		apppricing.Config{
			BatchConcurrency: cfg.Pricing.BatchConcurrency,
			MaxBatchLines:    cfg.Pricing.MaxBatchLines,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		PricingUC:   pricingUC,
		Metrics:     registry,
		Logger:      log,
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		DocsFile:    "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
