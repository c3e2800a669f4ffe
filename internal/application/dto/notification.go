package dto

// NotificationKind tipo de aviso mostrado al usuario.
type NotificationKind string

const (
	NotifySuccess  NotificationKind = "success"
	NotifyError    NotificationKind = "error"
	NotifyConflict NotificationKind = "conflict"
)

// Notification aviso transitorio. Dependents solo se informa en borrados bloqueados.
type Notification struct {
	Kind       NotificationKind `json:"tipo"`
	Message    string           `json:"mensaje"`
	Dependents []string         `json:"productos,omitempty"`
}

// Success construye un aviso de éxito.
func Success(msg string) *Notification { return &Notification{Kind: NotifySuccess, Message: msg} }

// Failure construye un aviso de error.
func Failure(msg string) *Notification { return &Notification{Kind: NotifyError, Message: msg} }

// Clone copia el aviso, incluida la lista de dependencias.
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Dependents = append([]string(nil), n.Dependents...)
	return &cp
}
