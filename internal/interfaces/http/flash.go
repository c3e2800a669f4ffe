package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/session"
)

// flasher guarda y recupera avisos entre una mutación y el GET que la sigue.
type flasher struct {
	store session.FlashStore
	log   zerolog.Logger
}

// redirect guarda n para la sesión actual y redirige con 303.
func (f flasher) redirect(c *fiber.Ctx, to string, n *dto.Notification) error {
	if f.store != nil && n != nil {
		if err := f.store.Put(c.UserContext(), GetSessionID(c), n); err != nil {
			f.log.Warn().Err(err).Msg("no se pudo guardar el aviso flash")
		}
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

// pop devuelve el aviso pendiente de la sesión, si lo hay.
func (f flasher) pop(c *fiber.Ctx) *dto.Notification {
	if f.store == nil {
		return nil
	}
	n, err := f.store.Pop(c.UserContext(), GetSessionID(c))
	if err != nil {
		f.log.Warn().Err(err).Msg("no se pudo leer el aviso flash")
		return nil
	}
	return n
}
