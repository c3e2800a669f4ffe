package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/jhoicas/licores-deluxe/docs"
	"github.com/jhoicas/licores-deluxe/internal/application/admin"
	"github.com/jhoicas/licores-deluxe/internal/application/catalog"
	"github.com/jhoicas/licores-deluxe/internal/application/checkout"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/licores-deluxe/internal/infrastructure/pdf"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/licores-deluxe/internal/interfaces/http"
	"github.com/jhoicas/licores-deluxe/pkg/config"
	"github.com/jhoicas/licores-deluxe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Propaga traceparent al backend a través del transporte otelhttp.
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var (
		registry prometheus.Registerer
		gatherer prometheus.Gatherer
	)
	if cfg.App.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		registry, gatherer = reg, reg
	}

	client := backend.NewClient(cfg.Backend, backend.NewMetrics(registry), log.Component("backend"))
	categoryRepo := backend.NewCategoryRepository(client)
	supplierRepo := backend.NewSupplierRepository(client)
	productRepo := backend.NewProductRepository(client)
	cartRepo := backend.NewCartRepository(client)

	catalogUC := catalog.NewUseCase(categoryRepo, productRepo, log.Component("catalogo"))
	categories := admin.NewCategoryResource(categoryRepo, productRepo)
	suppliers := admin.NewSupplierResource(supplierRepo, productRepo)

	// PDF: resumen del pedido con enlace QR al carrito
	summaryUC := checkout.NewSummaryUseCase(cartRepo, infrapdf.NewMarotoPDFGenerator(), cfg.App.PublicURL+"/carrito")

	ctx := context.Background()
	var flash session.FlashStore
	if cfg.Redis.URL != "" {
		redisFlash, err := session.NewRedisFlashStore(ctx, cfg.Redis.URL, cfg.Session.FlashTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisFlash.Close()
		flash = redisFlash
	} else {
		log.Warn().Msg("REDIS_URL vacío: avisos flash en memoria (una sola instancia)")
		flash = session.NewMemoryFlashStore(cfg.Session.FlashTTL)
	}

	var httpMetrics *httpRouter.HTTPMetrics
	if registry != nil {
		httpMetrics = httpRouter.NewHTTPMetrics(registry)
	}
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:    cfg.App.Name,
		Metrics: httpMetrics,
		Log:     log.Component("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:       catalogUC,
		Categories:    categories,
		Suppliers:     suppliers,
		Carts:         cartRepo,
		Summary:       summaryUC,
		Flash:         flash,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		LoginURL:      cfg.JWT.LoginURL,
		SessionCookie: cfg.Session.CookieName,
		TokenCookie:   cfg.Session.TokenCookieName,
		SecureCookies: cfg.App.Env == "production",
		Gatherer:      gatherer,
		Log:           log.Component("router"),
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
