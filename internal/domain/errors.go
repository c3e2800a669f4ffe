package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBusy               = errors.New("hay una operación en curso")
	ErrBackendUnavailable = errors.New("backend no disponible")
	ErrDependencyConflict = errors.New("existen productos asociados")
)

// DependencyConflictCode es el código estructurado con el que el backend marca
// un borrado bloqueado por integridad referencial.
const DependencyConflictCode = "DEPENDENCIAS_ASOCIADAS"

// dependencyConflictMarker es el texto que el backend incluye en el mensaje cuando
// todavía no envía el código estructurado.
const dependencyConflictMarker = "productos asociados"

// BackendError es un rechazo del backend con cuerpo JSON {error, codigo, productos}.
// Status guarda el código HTTP original.
type BackendError struct {
	Status     int
	Code       string
	Message    string
	Dependents []string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

// IsDependencyConflict reconoce un borrado bloqueado: primero por código, luego por
// el texto del mensaje como compatibilidad con backends antiguos.
func (e *BackendError) IsDependencyConflict() bool {
	if e.Code == DependencyConflictCode {
		return true
	}
	return strings.Contains(strings.ToLower(e.Message), dependencyConflictMarker)
}

// Is permite usar errors.Is con los sentinelas del dominio.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrDependencyConflict:
		return e.IsDependencyConflict()
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrConflict:
		return e.Status == http.StatusConflict || e.IsDependencyConflict()
	case ErrBackendUnavailable:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}

// UserMessage devuelve el mensaje del backend o fallback si no envió ninguno.
func UserMessage(err error, fallback string) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}

// Dependents extrae la lista de entidades bloqueantes de un error del backend.
func Dependents(err error) []string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Dependents
	}
	return nil
}
