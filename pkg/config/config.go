package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	Session SessionConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	PublicURL      string // URL pública de la tienda (enlace QR del resumen)
	LogLevel       string
	DocsEnabled    bool
	MetricsEnabled bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig origen de la API REST de la tienda.
// Timeout cero significa sin límite (el contexto de la petición sigue aplicando).
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Validate comprueba que BaseURL sea una URL absoluta http(s).
func (c BackendConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("BACKEND_URL inválido: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("BACKEND_URL debe ser http(s): %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("BACKEND_URL sin host: %q", c.BaseURL)
	}
	return nil
}

// JWTConfig validación de los tokens emitidos por el proveedor de identidad.
type JWTConfig struct {
	Secret   string
	Issuer   string
	LoginURL string // página de acceso del proveedor
}

// SessionConfig cookies de sesión (carrito) y de token de identidad.
type SessionConfig struct {
	CookieName      string
	TokenCookieName string
	FlashTTL        time.Duration
}

// RedisConfig almacenamiento opcional de notificaciones flash. URL vacía = memoria.
type RedisConfig struct {
	URL string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "licores-deluxe"),
		PublicURL:      strings.TrimRight(getString(v, "APP_PUBLIC_URL", "http://localhost:3000"), "/"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			DocsEnabled:    getBool(v, "DOCS_ENABLED", false),
			MetricsEnabled: getBool(v, "METRICS_ENABLED", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:5000"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:   getString(v, "JWT_SECRET", ""),
			Issuer:   getString(v, "JWT_ISSUER", ""),
			LoginURL: getString(v, "IDP_LOGIN_URL", ""),
		},
		Session: SessionConfig{
			CookieName:      getString(v, "SESSION_COOKIE", "licores_sid"),
			TokenCookieName: getString(v, "TOKEN_COOKIE", "licores_token"),
			FlashTTL:        time.Duration(getInt(v, "FLASH_TTL_SECONDS", 60)) * time.Second,
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
	}

	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
