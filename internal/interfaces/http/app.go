package http

import (
	"errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/views"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name    string
	Metrics *HTTPMetrics
	Log     zerolog.Logger
}

// NewViewsEngine motor de plantillas sobre las vistas embebidas.
func NewViewsEngine() *html.Engine {
	engine := html.NewFileSystem(nethttp.FS(views.FS), ".html")
	engine.AddFunc("join", strings.Join)
	return engine
}

// NewApp construye la aplicación Fiber con vistas, recursos estáticos y los
// middlewares comunes. Las rutas se registran después con Router.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Views:        NewViewsEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 35,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler(cfg.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(cfg.Log))
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
	}
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:       nethttp.FS(views.FS),
		PathPrefix: "assets",
		MaxAge:     3600,
	}))
	return app
}

// errorHandler respuesta de último recurso para errores no tratados por los handlers.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "error interno"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Code: errorCodeForStatus(code), Message: message})
	}
}

func errorCodeForStatus(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "INTERNAL"
	}
}
