package entity

// Roles conocidos del proveedor de identidad.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "cliente"
)

// Identity es la identidad actual de quien navega. Se inyecta explícitamente en
// los flujos de carrito y administración en lugar de leerse de un contexto global.
// SessionID identifica el carrito ante el backend; UserID queda vacío para invitados.
type Identity struct {
	UserID    string
	Name      string
	Role      string
	SessionID string
}

// IsAuthenticated indica si hay un usuario autenticado.
func (i Identity) IsAuthenticated() bool { return i.UserID != "" }

// IsAdmin indica si la identidad puede operar el back-office.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// DisplayName devuelve el nombre del usuario o "Mi cuenta".
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return "Mi cuenta"
}
