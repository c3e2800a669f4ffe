package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/admin"
	"github.com/jhoicas/licores-deluxe/internal/application/catalog"
	"github.com/jhoicas/licores-deluxe/internal/application/checkout"
	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog    *catalog.UseCase
	Categories *admin.CategoryResource
	Suppliers  *admin.SupplierResource
	Carts      repository.CartRepository
	Summary    *checkout.SummaryUseCase
	Flash      session.FlashStore

	JWTSecret     string
	JWTIssuer     string
	LoginURL      string
	SessionCookie string
	TokenCookie   string
	SecureCookies bool

	// Gatherer expone /metrics si no es nil.
	Gatherer prometheus.Gatherer
	Log      zerolog.Logger
}

// Router registra las rutas de la tienda y del back-office.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	flash := flasher{store: deps.Flash, log: deps.Log}

	web := app.Group("/",
		SessionMiddleware(deps.SessionCookie, deps.SecureCookies),
		IdentityMiddleware(deps.JWTSecret, deps.JWTIssuer, deps.TokenCookie, deps.Log),
	)

	authHandler := NewAuthHandler(deps.LoginURL, deps.TokenCookie, deps.SecureCookies)
	web.Get("/auth/login", authHandler.Login)
	web.Post("/auth/salir", authHandler.Logout)

	// Tienda (público)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	web.Get("/", catalogHandler.Home)
	web.Get("/tienda", catalogHandler.Shop)

	// Carrito (sesión)
	cartHandler := NewCartHandler(deps.Carts, deps.Summary, flash, deps.Log.With().Str("component", "carrito").Logger())
	carrito := web.Group("/carrito")
	carrito.Get("/", cartHandler.Show)
	carrito.Get("/resumen.pdf", cartHandler.SummaryPDF)
	carrito.Post("/items/:id/cantidad", cartHandler.SetQuantity)
	carrito.Post("/items/:id/incrementar", cartHandler.Increment)
	carrito.Post("/items/:id/decrementar", cartHandler.Decrement)
	carrito.Post("/items/:id/eliminar", cartHandler.Remove)

	// Back-office (rol admin)
	adminGroup := web.Group("/admin", RequireRole(entity.RoleAdmin))

	categoryHandler := NewAdminHandler[entity.Category, dto.CategoryForm](deps.Categories, admin.CategoryLabels(), "/admin/categorias", "admin/categories",
		flash, deps.Log.With().Str("component", "admin_categorias").Logger())
	registerAdmin(adminGroup.Group("/categorias"), categoryHandler)

	supplierHandler := NewAdminHandler[entity.Supplier, dto.SupplierForm](deps.Suppliers, admin.SupplierLabels(), "/admin/proveedores", "admin/suppliers",
		flash, deps.Log.With().Str("component", "admin_proveedores").Logger())
	registerAdmin(adminGroup.Group("/proveedores"), supplierHandler)
}

func registerAdmin[T admin.Entity, F admin.Form](g fiber.Router, h *AdminHandler[T, F]) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Post("/:id", h.Update)
	g.Get("/:id/eliminar", h.ConfirmDelete)
	g.Post("/:id/eliminar", h.Delete)
}
