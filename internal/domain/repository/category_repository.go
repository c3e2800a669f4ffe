package repository

import (
	"context"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// CategoryRepository define el puerto hacia el recurso /api/categorias (DIP).
// Delete devuelve el mensaje de confirmación del backend.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, category entity.Category) (*entity.Category, error)
	Update(ctx context.Context, category entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id string) (string, error)
}
