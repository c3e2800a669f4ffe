package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

const cartsPath = "/api/carritos"

// SessionQueryParam parámetro con el que se identifica el carrito ante el backend.
// Es la única estrategia de identidad: sin cookies ni credenciales ambientales.
const SessionQueryParam = "sessionId"

// CartRepo implementación de CartRepository sobre la API REST.
type CartRepo struct {
	c *Client
}

// NewCartRepository construye el adaptador.
func NewCartRepository(c *Client) *CartRepo {
	return &CartRepo{c: c}
}

type quantityPayload struct {
	Quantity int `json:"cantidad"`
}

// cartEnvelope respuesta de las mutaciones: {carrito: Cart}.
type cartEnvelope struct {
	Cart *entity.Cart `json:"carrito"`
}

func identityQuery(who entity.Identity) url.Values {
	q := url.Values{}
	if who.SessionID != "" {
		q.Set(SessionQueryParam, who.SessionID)
	}
	return q
}

// Get obtiene el carrito actual. Un 404 equivale a "sin carrito" (nil, nil).
func (r *CartRepo) Get(ctx context.Context, who entity.Identity) (*entity.Cart, error) {
	var out entity.Cart
	err := r.c.Do(ctx, "carritos", http.MethodGet, cartsPath, identityQuery(who), nil, &out)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener carrito: %w", err)
	}
	return &out, nil
}

// UpdateItemQuantity fija la cantidad de una línea y devuelve el carrito recalculado.
func (r *CartRepo) UpdateItemQuantity(ctx context.Context, who entity.Identity, itemID string, quantity int) (*entity.Cart, error) {
	var out cartEnvelope
	path := cartsPath + "/items/" + url.PathEscape(itemID)
	if err := r.c.Do(ctx, "carritos", http.MethodPut, path, identityQuery(who), quantityPayload{Quantity: quantity}, &out); err != nil {
		return nil, fmt.Errorf("actualizar cantidad: %w", err)
	}
	if out.Cart == nil {
		return nil, fmt.Errorf("actualizar cantidad: respuesta sin carrito")
	}
	return out.Cart, nil
}

// RemoveItem elimina una línea y devuelve el carrito recalculado.
func (r *CartRepo) RemoveItem(ctx context.Context, who entity.Identity, itemID string) (*entity.Cart, error) {
	var out cartEnvelope
	path := cartsPath + "/items/" + url.PathEscape(itemID)
	if err := r.c.Do(ctx, "carritos", http.MethodDelete, path, identityQuery(who), nil, &out); err != nil {
		return nil, fmt.Errorf("eliminar producto del carrito: %w", err)
	}
	if out.Cart == nil {
		return nil, fmt.Errorf("eliminar producto del carrito: respuesta sin carrito")
	}
	return out.Cart, nil
}
