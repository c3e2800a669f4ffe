package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const suppliersPath = "/api/proveedores"

// SupplierRepo implementación del puerto SupplierRepository sobre la API REST.
type SupplierRepo struct {
	c *Client
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(c *Client) *SupplierRepo {
	return &SupplierRepo{c: c}
}

type supplierPayload struct {
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}

func toSupplierPayload(s entity.Supplier) supplierPayload {
	return supplierPayload{Name: s.Name, Contact: s.Contact, Phone: s.Phone, Email: s.Email}
}

// List obtiene todos los proveedores.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := r.c.Do(ctx, "proveedores", http.MethodGet, suppliersPath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	return out, nil
}

// Create crea un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := r.c.Do(ctx, "proveedores", http.MethodPost, suppliersPath, nil, toSupplierPayload(supplier), &out); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return &out, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	var out entity.Supplier
	path := suppliersPath + "/" + url.PathEscape(supplier.ID)
	if err := r.c.Do(ctx, "proveedores", http.MethodPut, path, nil, toSupplierPayload(supplier), &out); err != nil {
		return nil, fmt.Errorf("actualizar proveedor: %w", err)
	}
	return &out, nil
}

// Delete elimina un proveedor y devuelve el mensaje del backend.
func (r *SupplierRepo) Delete(ctx context.Context, id string) (string, error) {
	msg, err := r.c.deleteWithMessage(ctx, "proveedores", suppliersPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("eliminar proveedor: %w", err)
	}
	return msg, nil
}
