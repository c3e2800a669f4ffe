package repository

import (
	"context"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// CartRepository define el puerto hacia /api/carritos. Cada operación recibe la
// identidad explícitamente; las mutaciones devuelven el carrito completo recalculado.
type CartRepository interface {
	Get(ctx context.Context, who entity.Identity) (*entity.Cart, error)
	UpdateItemQuantity(ctx context.Context, who entity.Identity, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, who entity.Identity, itemID string) (*entity.Cart, error)
}
