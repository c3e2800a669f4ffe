package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo consulta GET /api/productos.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List lista productos aplicando los filtros no vacíos.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	q := url.Values{}
	if filter.CategoryID != "" {
		q.Set("categoria", filter.CategoryID)
	}
	if filter.SupplierID != "" {
		q.Set("proveedor", filter.SupplierID)
	}
	var out []entity.Product
	if err := r.c.Do(ctx, "productos", http.MethodGet, "/api/productos", q, nil, &out); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return out, nil
}
