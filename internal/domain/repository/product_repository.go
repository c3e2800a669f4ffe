package repository

import (
	"context"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// ProductFilter filtros soportados por GET /api/productos. Los campos vacíos no se envían.
type ProductFilter struct {
	CategoryID string
	SupplierID string
}

// ProductRepository define el puerto de consulta del catálogo. El storefront no
// crea ni modifica productos.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
}
