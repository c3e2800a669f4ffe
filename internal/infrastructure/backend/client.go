package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/pkg/config"
)

// maxBodyBytes límite de lectura de cualquier respuesta del backend.
const maxBodyBytes = 1 << 20

// Client cliente JSON de la API REST de la tienda. Sin reintentos: POST no es
// idempotente y la UI nunca repite una mutación por su cuenta.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
	log        zerolog.Logger
}

// NewClient construye el cliente con transporte instrumentado (OpenTelemetry).
func NewClient(cfg config.BackendConfig, metrics *Metrics, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: metrics,
		log:     log,
	}
}

// errorBody cuerpo de error del backend: {error, codigo, productos}.
type errorBody struct {
	Error    string          `json:"error"`
	Code     string          `json:"codigo"`
	Products json.RawMessage `json:"productos"`
}

// messageBody cuerpo de éxito de un DELETE: {mensaje}.
type messageBody struct {
	Message string `json:"mensaje"`
}

// Do ejecuta method sobre path (relativo a la base, p. ej. "/api/categorias").
// in se serializa como JSON si no es nil; out recibe el cuerpo de éxito si no es nil.
// Respuestas no 2xx devuelven *domain.BackendError; fallos de red envuelven
// domain.ErrBackendUnavailable.
func (c *Client) Do(ctx context.Context, resource, method, path string, query url.Values, in, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(resource, method, OutcomeError, time.Since(start))
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("llamada al backend fallida")
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrBackendUnavailable, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.observe(resource, method, OutcomeError, time.Since(start))
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome := OutcomeRejected
		if resp.StatusCode >= http.StatusInternalServerError {
			outcome = OutcomeError
		}
		c.metrics.observe(resource, method, outcome, time.Since(start))
		be := decodeError(resp.StatusCode, raw)
		c.log.Warn().
			Int("status", be.Status).
			Str("method", method).
			Str("path", path).
			Str("error", be.Message).
			Msg("backend rechazó la petición")
		return be
	}
	c.metrics.observe(resource, method, OutcomeOK, time.Since(start))

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError interpreta el cuerpo de un rechazo. Cuerpos no JSON producen un
// BackendError sin mensaje y la UI muestra su texto genérico.
func decodeError(status int, raw []byte) *domain.BackendError {
	be := &domain.BackendError{Status: status}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return be
	}
	be.Message = strings.TrimSpace(eb.Error)
	be.Code = eb.Code
	be.Dependents = decodeDependents(eb.Products)
	return be
}

// decodeDependents acepta ["Macallan 25"] o [{"nombre":"Macallan 25"}].
func decodeDependents(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return names
	}
	var objs []struct {
		Name string `json:"nombre"`
	}
	if err := json.Unmarshal(raw, &objs); err != nil {
		return nil
	}
	names = make([]string, 0, len(objs))
	for _, o := range objs {
		if o.Name != "" {
			names = append(names, o.Name)
		}
	}
	return names
}

// deleteWithMessage ejecuta un DELETE y devuelve el {mensaje} de confirmación.
func (c *Client) deleteWithMessage(ctx context.Context, resource, path string) (string, error) {
	var out messageBody
	if err := c.Do(ctx, resource, http.MethodDelete, path, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// IsUnavailable indica si el error proviene de la red o de un 5xx.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrBackendUnavailable)
}
