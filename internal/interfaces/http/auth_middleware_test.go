package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	apphttp "github.com/jhoicas/licores-deluxe/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/licores-deluxe/pkg/jwt"
)

const (
	testJWTSecret   = "test-secret-key-for-unit-tests"
	testIssuer      = "licores-idp-test"
	testUserID      = "user-test-1"
	testExpMin      = 60
	testSessionName = "licores_sid"
	testTokenCookie = "licores_token"
)

// buildTestApp monta una app mínima con los middlewares de identidad y una ruta
// protegida por RequireRole.
func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(
		apphttp.SessionMiddleware(testSessionName, false),
		apphttp.IdentityMiddleware(testJWTSecret, testIssuer, testTokenCookie, zerolog.Nop()),
	)
	app.Get("/protegido", apphttp.RequireRole(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/yo", func(c *fiber.Ctx) error {
		return c.JSON(apphttp.CurrentIdentity(c))
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Ana", role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_AdminAutorizado(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "/protegido", "Bearer "+tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolInsuficiente_Retorna403(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "/protegido", "Bearer "+tokenForRole(t, "cliente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "/protegido", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, "/protegido", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_TokenEnCookie(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: testTokenCookie, Value: tokenForRole(t, entity.RoleAdmin)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIdentityMiddleware_ExtraeClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/yo", "Bearer "+tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	var who entity.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&who))
	assert.Equal(t, testUserID, who.UserID)
	assert.Equal(t, "Ana", who.Name)
	assert.Equal(t, entity.RoleAdmin, who.Role)
	assert.NotEmpty(t, who.SessionID)
}

func TestIdentityMiddleware_TokenInvalido_EsInvitado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/yo", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	var who entity.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&who))
	assert.Empty(t, who.UserID)
	assert.Empty(t, who.Role)
}

func TestSessionMiddleware_CreaCookieUUID(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/yo", "")
	defer resp.Body.Close()

	var sid string
	for _, ck := range resp.Cookies() {
		if ck.Name == testSessionName {
			sid = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	require.NotEmpty(t, sid, "debe emitirse la cookie de sesión")
	_, err := uuid.Parse(sid)
	assert.NoError(t, err)
}

func TestSessionMiddleware_ReutilizaCookieValida(t *testing.T) {
	app := buildTestApp()
	sid := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/yo", nil)
	req.AddCookie(&http.Cookie{Name: testSessionName, Value: sid})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var who entity.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&who))
	assert.Equal(t, sid, who.SessionID)
	for _, ck := range resp.Cookies() {
		assert.NotEqual(t, testSessionName, ck.Name, "no se reemite una cookie válida")
	}
}
