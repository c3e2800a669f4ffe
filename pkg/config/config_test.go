package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licores-deluxe/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "licores_sid", cfg.Session.CookieName)
	assert.Equal(t, "http://localhost:3000", cfg.App.PublicURL)
	assert.True(t, cfg.App.MetricsEnabled)
	assert.Empty(t, cfg.Redis.URL, "sin REDIS_URL las notificaciones flash van a memoria")
}

func TestFromViper_SobrescribeBackend(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "https://api.licoresdeluxe.com/")
	v.Set("BACKEND_TIMEOUT_SECONDS", "5")
	v.Set("HTTP_PORT", "8081")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.licoresdeluxe.com", cfg.Backend.BaseURL, "la barra final se elimina")
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestFromViper_BackendURLInvalido(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "localhost:5000")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
