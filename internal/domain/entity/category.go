package entity

// Category representa una categoría de licores tal como la expone el backend.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"nombre"`
}

// EntityID devuelve el identificador estable de la categoría.
func (c Category) EntityID() string { return c.ID }

// DisplayName devuelve el nombre a mostrar en listados y confirmaciones.
func (c Category) DisplayName() string { return c.Name }
