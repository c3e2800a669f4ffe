package repository

import (
	"context"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// SupplierRepository define el puerto hacia el recurso /api/proveedores (DIP).
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) (string, error)
}
