package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// CategoryForm valores del editor de categorías.
type CategoryForm struct {
	Name string `json:"nombre" form:"nombre"`
}

// Validate exige nombre no vacío.
func (f CategoryForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return nil
}

// ToEntity construye la categoría a enviar; id vacío en altas.
func (f CategoryForm) ToEntity(id string) entity.Category {
	return entity.Category{ID: id, Name: strings.TrimSpace(f.Name)}
}

// CategoryFormFrom precarga el editor con una categoría existente.
func CategoryFormFrom(c entity.Category) CategoryForm {
	return CategoryForm{Name: c.Name}
}

// SupplierForm valores del editor de proveedores.
type SupplierForm struct {
	Name    string `json:"nombre" form:"nombre"`
	Contact string `json:"contacto" form:"contacto"`
	Phone   string `json:"telefono" form:"telefono"`
	Email   string `json:"email" form:"email"`
}

// Validate exige nombre y, si viene, un email bien formado.
func (f SupplierForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if email := strings.TrimSpace(f.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
	}
	return nil
}

// ToEntity construye el proveedor a enviar; id vacío en altas.
func (f SupplierForm) ToEntity(id string) entity.Supplier {
	return entity.Supplier{
		ID:      id,
		Name:    strings.TrimSpace(f.Name),
		Contact: strings.TrimSpace(f.Contact),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
	}
}

// SupplierFormFrom precarga el editor con un proveedor existente.
func SupplierFormFrom(s entity.Supplier) SupplierForm {
	return SupplierForm{Name: s.Name, Contact: s.Contact, Phone: s.Phone, Email: s.Email}
}

// QuantityRequest cambio de cantidad de una línea del carrito.
type QuantityRequest struct {
	Quantity int `json:"cantidad" form:"cantidad"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
