package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/licores-deluxe/internal/interfaces/http"
)

func buildAuthApp(loginURL string) *fiber.App {
	h := apphttp.NewAuthHandler(loginURL, testTokenCookie, false)
	app := fiber.New()
	app.Get("/auth/login", h.Login)
	app.Post("/auth/salir", h.Logout)
	return app
}

func TestLogin_RedirigeAlProveedorConRutaDeVuelta(t *testing.T) {
	app := buildAuthApp("https://idp.licoresdeluxe.test/login")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/login?volver=/carrito", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "idp.licoresdeluxe.test", loc.Host)
	assert.Equal(t, "/carrito", loc.Query().Get("volver"))
}

func TestLogin_RutaExternaVuelveAlInicio(t *testing.T) {
	app := buildAuthApp("https://idp.licoresdeluxe.test/login")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/login?volver=//evil.test", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Query().Get("volver"))
}

func TestLogin_SinProveedorConfigurado_Retorna503(t *testing.T) {
	app := buildAuthApp("")

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLogout_BorraCookieDelToken(t *testing.T) {
	app := buildAuthApp("")

	req := httptest.NewRequest(http.MethodPost, "/auth/salir", nil)
	req.AddCookie(&http.Cookie{Name: testTokenCookie, Value: "algo"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var cleared bool
	for _, ck := range resp.Cookies() {
		if ck.Name == testTokenCookie {
			cleared = ck.Value == ""
		}
	}
	assert.True(t, cleared, "la cookie del token debe vaciarse")
}
