package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/pkg/jwt"
)

// Locals keys de la identidad actual en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserName  = "user_name"
	LocalRole      = "role"
	LocalSessionID = "session_id"
)

const sessionMaxAge = 30 * 24 * time.Hour

// SessionMiddleware garantiza un identificador de sesión (uuid) en una cookie.
// Ese identificador es el que se envía al backend para el carrito.
func SessionMiddleware(cookieName string, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fiber devuelve una vista del buffer de la petición; el id vive más allá de ella.
		sid := utils.CopyString(c.Cookies(cookieName))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    sid,
				Path:     "/",
				Expires:  time.Now().Add(sessionMaxAge),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalSessionID, sid)
		return c.Next()
	}
}

// IdentityMiddleware lee el token del proveedor de identidad (Bearer o cookie) y
// carga usuario y rol en locals. Sin token, o con un token inválido, la petición
// sigue como invitado.
func IdentityMiddleware(jwtSecret, issuer, tokenCookie string, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" && tokenCookie != "" {
			tokenString = c.Cookies(tokenCookie)
		}
		if tokenString == "" || jwtSecret == "" {
			return c.Next()
		}
		claims, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token inválido o expirado, se continúa como invitado")
			return c.Next()
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole exige una identidad autenticada con alguno de los roles indicados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return respondError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "inicia sesión para continuar")
		}
		role := GetRole(c)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "no tienes permiso para acceder a esta sección")
	}
}

// GetUserID devuelve el UserID del contexto (vacío para invitados).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSessionID devuelve el identificador de sesión del contexto.
func GetSessionID(c *fiber.Ctx) string { return localString(c, LocalSessionID) }

// CurrentIdentity construye la identidad que se inyecta en los flujos.
func CurrentIdentity(c *fiber.Ctx) entity.Identity {
	return entity.Identity{
		UserID:    GetUserID(c),
		Name:      localString(c, LocalUserName),
		Role:      GetRole(c),
		SessionID: GetSessionID(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
