package http

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/admin"
	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
)

// AdminHandler pantallas de back-office (categorías, proveedores). Cada petición
// construye su propia Screen: nada sobrevive entre peticiones salvo el aviso flash.
type AdminHandler[T admin.Entity, F admin.Form] struct {
	resource admin.Resource[T, F]
	labels   admin.Labels[T, F]
	basePath string
	listView string
	flash    flasher
	log      zerolog.Logger
}

// NewAdminHandler construye el handler para basePath (p. ej. "/admin/categorias").
func NewAdminHandler[T admin.Entity, F admin.Form](
	resource admin.Resource[T, F],
	labels admin.Labels[T, F],
	basePath, listView string,
	flash flasher,
	log zerolog.Logger,
) *AdminHandler[T, F] {
	return &AdminHandler[T, F]{
		resource: resource,
		labels:   labels,
		basePath: basePath,
		listView: listView,
		flash:    flash,
		log:      log,
	}
}

func (h *AdminHandler[T, F]) screen(confirm admin.Confirmer) *admin.Screen[T, F] {
	return admin.NewScreen(h.resource, h.labels, confirm, h.log)
}

func (h *AdminHandler[T, F]) renderList(c *fiber.Ctx, status int, s *admin.Screen[T, F]) error {
	return render(c, status, h.listView, h.labels.Title, s.View())
}

// List godoc
// @Summary      Listar (y abrir el editor con ?editar=:id o ?nuevo=1)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  admin.ViewModel
// @Failure      502  {object}  admin.ViewModel
// @Router       /admin/categorias [get]
// @Router       /admin/proveedores [get]
func (h *AdminHandler[T, F]) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	s := h.screen(nil)
	s.Notify(h.flash.pop(c))

	if err := s.Load(ctx); err != nil {
		return h.renderList(c, statusFor(err), s)
	}
	if id := c.Query("editar"); id != "" {
		e, ok := s.Find(id)
		if !ok {
			return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "registro no encontrado")
		}
		_ = s.OpenEditor(&e)
	} else if c.Query("nuevo") == "1" {
		_ = s.OpenEditor(nil)
	}
	return h.renderList(c, fiber.StatusOK, s)
}

// Create godoc
// @Summary      Crear
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  admin.ViewModel
// @Failure      400  {object}  admin.ViewModel
// @Failure      502  {object}  admin.ViewModel
// @Router       /admin/categorias [post]
// @Router       /admin/proveedores [post]
func (h *AdminHandler[T, F]) Create(c *fiber.Ctx) error {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	s := h.screen(nil)
	_ = s.OpenEditor(nil)
	return h.submit(c, s, form, fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  admin.ViewModel
// @Failure      400  {object}  admin.ViewModel
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/categorias/{id} [post]
// @Router       /admin/proveedores/{id} [post]
func (h *AdminHandler[T, F]) Update(c *fiber.Ctx) error {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	s := h.screen(nil)
	if err := s.Load(c.UserContext()); err != nil {
		return h.renderList(c, statusFor(err), s)
	}
	e, ok := s.Find(c.Params("id"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "registro no encontrado")
	}
	_ = s.OpenEditor(&e)
	return h.submit(c, s, form, fiber.StatusOK)
}

func (h *AdminHandler[T, F]) submit(c *fiber.Ctx, s *admin.Screen[T, F], form F, okStatus int) error {
	ctx := c.UserContext()
	if err := s.Submit(ctx, form); err != nil {
		// La lista se vuelve a pedir para repintar la página con el editor abierto.
		_ = s.Load(ctx)
		return h.renderList(c, statusFor(err), s)
	}
	if wantsJSON(c) {
		return c.Status(okStatus).JSON(s.View())
	}
	return h.flash.redirect(c, h.basePath, s.View().Notification)
}

// ConfirmDelete godoc
// @Summary      Pregunta de confirmación antes de eliminar
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  ConfirmView
// @Router       /admin/categorias/{id}/eliminar [get]
// @Router       /admin/proveedores/{id}/eliminar [get]
func (h *AdminHandler[T, F]) ConfirmDelete(c *fiber.Ctx) error {
	s := h.screen(nil)
	if err := s.Load(c.UserContext()); err != nil {
		return h.renderList(c, statusFor(err), s)
	}
	e, ok := s.Find(c.Params("id"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "registro no encontrado")
	}
	return render(c, fiber.StatusOK, "admin/confirm", h.labels.Title, ConfirmView{
		Prompt:    h.labels.ConfirmDelete(e.DisplayName()),
		ActionURL: h.basePath + "/" + url.PathEscape(e.EntityID()) + "/eliminar",
		CancelURL: h.basePath,
	})
}

// ConfirmView datos de la página de confirmación.
type ConfirmView struct {
	Prompt    string `json:"pregunta"`
	ActionURL string `json:"accion"`
	CancelURL string `json:"cancelar"`
}

// Delete godoc
// @Summary      Eliminar (requiere confirmar=si)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id         path      string  true  "ID"
// @Param        confirmar  formData  string  true  "si"
// @Success      200  {object}  admin.ViewModel
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  admin.ViewModel
// @Failure      502  {object}  admin.ViewModel
// @Router       /admin/categorias/{id}/eliminar [post]
// @Router       /admin/proveedores/{id}/eliminar [post]
func (h *AdminHandler[T, F]) Delete(c *fiber.Ctx) error {
	confirmed := c.FormValue("confirmar") == "si" || c.Query("confirmar") == "si"
	s := h.screen(admin.ConfirmerFunc(func(context.Context, string) bool { return confirmed }))
	ctx := c.UserContext()

	if err := s.Load(ctx); err != nil {
		return h.renderList(c, statusFor(err), s)
	}
	id := c.Params("id")
	e, ok := s.Find(id)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "registro no encontrado")
	}

	outcome, err := s.Delete(ctx, id, e.DisplayName())
	if errors.Is(err, domain.ErrBusy) {
		return respondError(c, fiber.StatusConflict, "BUSY", err.Error())
	}

	vm := s.View()
	if wantsJSON(c) {
		switch outcome {
		case admin.DeleteDeclined:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "CONFIRMATION_REQUIRED",
				Message: h.labels.ConfirmDelete(e.DisplayName()),
			})
		case admin.DeleteBlocked:
			return c.Status(fiber.StatusConflict).JSON(vm)
		case admin.DeleteFailed:
			return c.Status(statusFor(err)).JSON(vm)
		default:
			return c.JSON(vm)
		}
	}
	return h.flash.redirect(c, h.basePath, vm.Notification)
}
