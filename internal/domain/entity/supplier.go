package entity

// Supplier representa un proveedor. Contacto, teléfono y email son opcionales.
type Supplier struct {
	ID      string `json:"_id"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty"`
}

// EntityID devuelve el identificador estable del proveedor.
func (s Supplier) EntityID() string { return s.ID }

// DisplayName devuelve el nombre a mostrar en listados y confirmaciones.
func (s Supplier) DisplayName() string { return s.Name }
