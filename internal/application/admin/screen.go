package admin

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
)

// Entity es un registro del backend administrable desde el back-office.
type Entity interface {
	EntityID() string
	DisplayName() string
}

// Form son los valores del editor. Validate se ejecuta antes de cualquier petición.
type Form interface {
	Validate() error
}

// Resource acceso al backend de un recurso administrable.
type Resource[T Entity, F Form] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, form F) error
	Update(ctx context.Context, id string, form F) error
	// Delete devuelve el {mensaje} de confirmación del backend.
	Delete(ctx context.Context, id string) (string, error)
	// Dependents devuelve los nombres de los productos que bloquean el borrado.
	Dependents(ctx context.Context, id string) ([]string, error)
}

// Confirmer pide confirmación al usuario antes de una acción destructiva.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmerFunc adapta una función a Confirmer.
type ConfirmerFunc func(ctx context.Context, prompt string) bool

// Confirm implementa Confirmer.
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// State estado de la pantalla.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateDeleting   State = "deleting"
)

// DeleteOutcome resultado de un intento de borrado.
type DeleteOutcome int

const (
	DeleteDeclined DeleteOutcome = iota
	DeleteBlocked
	DeleteDone
	DeleteFailed
)

// ViewModel instantánea inmutable de la pantalla.
type ViewModel[T Entity, F Form] struct {
	Title        string            `json:"titulo"`
	Items        []T               `json:"items"`
	State        State             `json:"estado"`
	Loading      bool              `json:"cargando"`
	Busy         bool              `json:"ocupado"`
	EditorOpen   bool              `json:"editorAbierto"`
	EditingID    string            `json:"editandoId,omitempty"`
	Form         F                 `json:"formulario"`
	Notification *dto.Notification `json:"notificacion,omitempty"`
}

// IsEdit indica si el editor está modificando una entidad existente.
func (v ViewModel[T, F]) IsEdit() bool { return v.EditingID != "" }

// Screen flujo de mutación protegido de una pantalla de administración:
// carga, editor de alta/edición y borrado con confirmación y comprobación de
// dependencias. Admite como mucho una mutación en curso.
type Screen[T Entity, F Form] struct {
	res     Resource[T, F]
	labels  Labels[T, F]
	confirm Confirmer
	log     zerolog.Logger

	mu         sync.Mutex
	items      []T
	loading    bool
	inFlight   State // StateSubmitting, StateDeleting o vacío
	editorOpen bool
	editing    *T
	form       F
	notice     *dto.Notification
}

// NewScreen construye la pantalla. Sin confirmer todo borrado se rechaza.
func NewScreen[T Entity, F Form](res Resource[T, F], labels Labels[T, F], confirm Confirmer, log zerolog.Logger) *Screen[T, F] {
	if confirm == nil {
		confirm = ConfirmerFunc(func(context.Context, string) bool { return false })
	}
	return &Screen[T, F]{res: res, labels: labels, confirm: confirm, log: log}
}

// Load obtiene la colección. El indicador de carga se limpia siempre.
func (s *Screen[T, F]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.res.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Str("resource", s.labels.Resource).Msg("error al cargar")
		s.notice = dto.Failure(domain.UserMessage(err, s.labels.LoadFailed))
		return err
	}
	s.items = items
	return nil
}

// Find busca una entidad en la última colección cargada.
func (s *Screen[T, F]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// OpenEditor abre el editor: nil para alta con formulario vacío, una entidad
// para edición con el formulario precargado. No hace peticiones.
func (s *Screen[T, F]) OpenEditor(e *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight != "" {
		return domain.ErrBusy
	}
	s.editorOpen = true
	if e == nil {
		var empty F
		s.editing = nil
		s.form = empty
		return nil
	}
	cp := *e
	s.editing = &cp
	s.form = s.labels.FormFrom(cp)
	return nil
}

// CloseEditor cierra el editor salvo que haya un envío en curso.
func (s *Screen[T, F]) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == StateSubmitting {
		return
	}
	s.editorOpen = false
	s.editing = nil
}

// Submit envía el formulario: POST si el editor se abrió vacío, PUT si se abrió
// con una entidad. Sin editor abierto se trata como alta.
func (s *Screen[T, F]) Submit(ctx context.Context, form F) error {
	s.mu.Lock()
	if s.inFlight != "" {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	s.editorOpen = true
	s.form = form
	if err := form.Validate(); err != nil {
		s.notice = dto.Failure(validationMessage(err))
		s.mu.Unlock()
		return err
	}
	s.inFlight = StateSubmitting
	var editing *T
	if s.editing != nil {
		cp := *s.editing
		editing = &cp
	}
	s.mu.Unlock()

	var err error
	if editing != nil {
		err = s.res.Update(ctx, (*editing).EntityID(), form)
	} else {
		err = s.res.Create(ctx, form)
	}

	s.mu.Lock()
	s.inFlight = ""
	if err != nil {
		s.log.Warn().Err(err).Str("resource", s.labels.Resource).Msg("error al guardar")
		s.notice = dto.Failure(domain.UserMessage(err, s.labels.SaveFailed))
		s.mu.Unlock()
		return err
	}
	msg := s.labels.Created
	if editing != nil {
		msg = s.labels.Updated
	}
	s.editorOpen = false
	s.editing = nil
	s.mu.Unlock()

	s.reloadAfter(ctx, dto.Success(msg))
	return nil
}

// Delete pide confirmación, comprueba dependencias y, si no las hay, borra.
// Un borrado bloqueado es un resultado informado, no un error.
func (s *Screen[T, F]) Delete(ctx context.Context, id, name string) (DeleteOutcome, error) {
	s.mu.Lock()
	if s.inFlight != "" {
		s.mu.Unlock()
		return DeleteDeclined, domain.ErrBusy
	}
	s.mu.Unlock()

	if !s.confirm.Confirm(ctx, s.labels.ConfirmDelete(name)) {
		return DeleteDeclined, nil
	}

	s.mu.Lock()
	if s.inFlight != "" {
		s.mu.Unlock()
		return DeleteDeclined, domain.ErrBusy
	}
	s.inFlight = StateDeleting
	s.mu.Unlock()

	deps, err := s.res.Dependents(ctx, id)
	if err != nil {
		// Si la comprobación falla se permite el borrado; el backend tiene la última palabra.
		s.log.Warn().Err(err).Str("resource", s.labels.Resource).Str("id", id).Msg("error verificando productos asociados")
		deps = nil
	}
	if len(deps) > 0 {
		s.finishDelete(&dto.Notification{Kind: dto.NotifyConflict, Message: s.labels.Blocked(name), Dependents: deps})
		return DeleteBlocked, nil
	}

	msg, err := s.res.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDependencyConflict) {
			s.finishDelete(&dto.Notification{
				Kind:       dto.NotifyConflict,
				Message:    domain.UserMessage(err, s.labels.Blocked(name)),
				Dependents: domain.Dependents(err),
			})
			return DeleteBlocked, nil
		}
		s.log.Error().Err(err).Str("resource", s.labels.Resource).Str("id", id).Msg("error al eliminar")
		s.finishDelete(dto.Failure(s.labels.DeleteFailed))
		return DeleteFailed, err
	}

	if msg == "" {
		msg = s.labels.Deleted
	}
	done := dto.Success(msg)
	s.finishDelete(done)
	s.reloadAfter(ctx, done)
	return DeleteDone, nil
}

// reloadAfter recarga la colección tras una mutación confirmada. El aviso de
// la mutación prevalece sobre un fallo de la recarga, que queda en el log.
func (s *Screen[T, F]) reloadAfter(ctx context.Context, n *dto.Notification) {
	_ = s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = n
}

func (s *Screen[T, F]) finishDelete(n *dto.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = ""
	s.notice = n
}

// Notify fija el aviso a mostrar (p. ej. el recuperado tras una redirección).
func (s *Screen[T, F]) Notify(n *dto.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = n
}

// View devuelve una copia del estado actual.
func (s *Screen[T, F]) View() ViewModel[T, F] {
	s.mu.Lock()
	defer s.mu.Unlock()

	vm := ViewModel[T, F]{
		Title:      s.labels.Title,
		Items:      append([]T(nil), s.items...),
		State:      s.state(),
		Loading:    s.loading,
		Busy:       s.inFlight != "",
		EditorOpen: s.editorOpen,
		Form:       s.form,
	}
	if vm.Items == nil {
		vm.Items = []T{}
	}
	if s.editing != nil {
		vm.EditingID = (*s.editing).EntityID()
	}
	if s.notice != nil {
		vm.Notification = s.notice.Clone()
	}
	return vm
}

func (s *Screen[T, F]) state() State {
	switch {
	case s.inFlight != "":
		return s.inFlight
	case s.loading:
		return StateLoading
	case s.editorOpen:
		return StateEditing
	default:
		return StateIdle
	}
}

// validationMessage quita el prefijo del sentinela para mostrar solo el detalle.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
}
