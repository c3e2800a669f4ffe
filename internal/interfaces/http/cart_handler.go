package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/cart"
	"github.com/jhoicas/licores-deluxe/internal/application/checkout"
	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

const cartPath = "/carrito"

// CartHandler carrito de la sesión actual y su resumen en PDF.
type CartHandler struct {
	carts   repository.CartRepository
	summary *checkout.SummaryUseCase
	flash   flasher
	log     zerolog.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(carts repository.CartRepository, summary *checkout.SummaryUseCase, flash flasher, log zerolog.Logger) *CartHandler {
	return &CartHandler{carts: carts, summary: summary, flash: flash, log: log}
}

func (h *CartHandler) view(c *fiber.Ctx) *cart.View {
	return cart.NewView(h.carts, CurrentIdentity(c), h.log)
}

func (h *CartHandler) renderCart(c *fiber.Ctx, status int, v *cart.View) error {
	tpl := "cart"
	if v.Empty() {
		tpl = "cart_empty"
	}
	return render(c, status, tpl, "Carrito de Compras", v.View())
}

// Show godoc
// @Summary      Ver el carrito de la sesión
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  cart.ViewModel
// @Failure      502  {object}  cart.ViewModel
// @Router       /carrito [get]
func (h *CartHandler) Show(c *fiber.Ctx) error {
	v := h.view(c)
	v.Notify(h.flash.pop(c))
	if err := v.Load(c.UserContext()); err != nil {
		return h.renderCart(c, statusFor(err), v)
	}
	return h.renderCart(c, fiber.StatusOK, v)
}

// SetQuantity godoc
// @Summary      Cambiar la cantidad de una línea
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la línea"
// @Param        body  body  dto.QuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  cart.ViewModel
// @Failure      400   {object}  cart.ViewModel
// @Failure      502   {object}  cart.ViewModel
// @Router       /carrito/items/{id}/cantidad [post]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	v := h.view(c)
	ctx := c.UserContext()
	if err := v.Load(ctx); err != nil {
		return h.renderCart(c, statusFor(err), v)
	}

	err := v.SetQuantity(ctx, c.Params("id"), in.Quantity)
	if errors.Is(err, domain.ErrInvalidInput) && in.Quantity < 1 {
		// Sin petición al backend: se repinta el carrito tal cual.
		return h.renderCart(c, fiber.StatusBadRequest, v)
	}
	return h.afterMutation(c, v, err)
}

// Increment godoc
// @Summary      Sumar una unidad a una línea
// @Tags         carrito
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  cart.ViewModel
// @Failure      400  {object}  cart.ViewModel
// @Failure      404  {object}  cart.ViewModel
// @Failure      502  {object}  cart.ViewModel
// @Router       /carrito/items/{id}/incrementar [post]
func (h *CartHandler) Increment(c *fiber.Ctx) error {
	return h.step(c, (*cart.View).Increment)
}

// Decrement godoc
// @Summary      Restar una unidad a una línea
// @Tags         carrito
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  cart.ViewModel
// @Failure      400  {object}  cart.ViewModel
// @Failure      404  {object}  cart.ViewModel
// @Failure      502  {object}  cart.ViewModel
// @Router       /carrito/items/{id}/decrementar [post]
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	return h.step(c, (*cart.View).Decrement)
}

// step aplica un +1/-1 sobre la cantidad que tiene ahora el backend.
func (h *CartHandler) step(c *fiber.Ctx, apply func(*cart.View, context.Context, string) error) error {
	v := h.view(c)
	ctx := c.UserContext()
	if err := v.Load(ctx); err != nil {
		return h.renderCart(c, statusFor(err), v)
	}
	err := apply(v, ctx, c.Params("id"))
	if errors.Is(err, domain.ErrInvalidInput) {
		// Bajar de una unidad no llega al backend.
		return h.renderCart(c, fiber.StatusBadRequest, v)
	}
	return h.afterMutation(c, v, err)
}

// Remove godoc
// @Summary      Eliminar una línea del carrito
// @Tags         carrito
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  cart.ViewModel
// @Failure      502  {object}  cart.ViewModel
// @Router       /carrito/items/{id}/eliminar [post]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	v := h.view(c)
	ctx := c.UserContext()
	if err := v.Load(ctx); err != nil {
		return h.renderCart(c, statusFor(err), v)
	}
	return h.afterMutation(c, v, v.RemoveItem(ctx, c.Params("id")))
}

func (h *CartHandler) afterMutation(c *fiber.Ctx, v *cart.View, err error) error {
	if wantsJSON(c) {
		return c.Status(statusFor(err)).JSON(v.View())
	}
	return h.flash.redirect(c, cartPath, v.View().Notification)
}

// SummaryPDF godoc
// @Summary      Descargar el resumen del pedido en PDF
// @Tags         carrito
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /carrito/resumen.pdf [get]
func (h *CartHandler) SummaryPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.summary.DownloadSummaryPDF(c.UserContext(), CurrentIdentity(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "EMPTY_CART", "tu carrito está vacío")
		}
		h.log.Error().Err(err).Msg("no se pudo generar el resumen del pedido")
		return respondError(c, statusFor(err), errorCode(err), "no se pudo generar el resumen del pedido")
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
