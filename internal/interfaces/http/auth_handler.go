package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler enlaza la tienda con el proveedor de identidad externo. La tienda
// no autentica: redirige al proveedor y borra su cookie de token al salir.
type AuthHandler struct {
	loginURL    string
	tokenCookie string
	secure      bool
}

// NewAuthHandler construye el handler. loginURL es la página de acceso del proveedor.
func NewAuthHandler(loginURL, tokenCookie string, secure bool) *AuthHandler {
	return &AuthHandler{loginURL: loginURL, tokenCookie: tokenCookie, secure: secure}
}

// Login godoc
// @Summary      Redirigir al proveedor de identidad
// @Tags         auth
// @Param        volver  query  string  false  "Ruta local a la que volver"
// @Success      302
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /auth/login [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.loginURL == "" {
		return respondError(c, fiber.StatusServiceUnavailable, "IDP_NOT_CONFIGURED", "el acceso no está disponible")
	}
	target, err := url.Parse(h.loginURL)
	if err != nil {
		return respondError(c, fiber.StatusServiceUnavailable, "IDP_NOT_CONFIGURED", "el acceso no está disponible")
	}
	q := target.Query()
	q.Set("volver", safeReturnPath(c.Query("volver")))
	target.RawQuery = q.Encode()
	return c.Redirect(target.String(), fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie del token)
// @Tags         auth
// @Success      303
// @Router       /auth/salir [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.tokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// safeReturnPath solo acepta rutas locales; cualquier otra cosa vuelve al inicio.
func safeReturnPath(p string) string {
	if p == "" || p[0] != '/' || (len(p) > 1 && (p[1] == '/' || p[1] == '\\')) {
		return "/"
	}
	return p
}
