package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
)

const layoutMain = "layouts/main"

// wantsJSON indica si el cliente pidió JSON en lugar de HTML.
func wantsJSON(c *fiber.Ctx) bool {
	accept := c.Get(fiber.HeaderAccept)
	if strings.Contains(accept, fiber.MIMEApplicationJSON) {
		return true
	}
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

// render responde el view model: JSON tal cual o la plantilla con el layout.
func render(c *fiber.Ctx, status int, view, title string, vm interface{}) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(vm)
	}
	return c.Status(status).Render(view, fiber.Map{
		"Title":    title,
		"Identity": CurrentIdentity(c),
		"Path":     c.Path(),
		"Page":     vm,
	}, layoutMain)
}

// respondError responde un error con dto.ErrorResponse o con la página de error.
func respondError(c *fiber.Ctx, status int, code, message string) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
	}
	return c.Status(status).Render("error", fiber.Map{
		"Title":    "Licores Deluxe",
		"Identity": CurrentIdentity(c),
		"Path":     c.Path(),
		"Page":     dto.ErrorResponse{Code: code, Message: message},
	}, layoutMain)
}

// statusFor traduce un error del dominio a código HTTP.
func statusFor(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrBusy), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadGateway
	}
}

// errorCode código de error estable para clientes JSON.
func errorCode(err error) string {
	switch statusFor(err) {
	case fiber.StatusBadRequest:
		return "VALIDATION"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	default:
		return "BACKEND_ERROR"
	}
}
