package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licores-deluxe/internal/application/catalog"
)

// CatalogHandler portada y tienda.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Home godoc
// @Summary      Portada: categorías y productos destacados
// @Tags         tienda
// @Produce      json
// @Success      200  {object}  catalog.HomeView
// @Router       / [get]
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "home", "Licores Deluxe - Tienda Premium de Licores", h.uc.Home(c.UserContext()))
}

// Shop godoc
// @Summary      Listado de productos
// @Tags         tienda
// @Produce      json
// @Param        categoria  query  string  false  "ID de categoría"
// @Success      200  {object}  catalog.ShopView
// @Router       /tienda [get]
func (h *CatalogHandler) Shop(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "shop", "Productos", h.uc.Shop(c.UserContext(), c.Query("categoria")))
}
