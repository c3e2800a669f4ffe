package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/backend"
)

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo_UpdateUsaPUTAlItem(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/categorias/abc", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"nombre": "Whisky Escocés"}, body)
		_, _ = w.Write([]byte(`{"_id":"abc","nombre":"Whisky Escocés"}`))
	})

	out, err := backend.NewCategoryRepository(client).Update(context.Background(),
		entity.Category{ID: "abc", Name: "Whisky Escocés"})
	require.NoError(t, err)
	assert.Equal(t, "Whisky Escocés", out.Name)
}

func TestCategoryRepo_DeleteDevuelveMensaje(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"mensaje":"Categoría eliminada"}`))
	})

	msg, err := backend.NewCategoryRepository(client).Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Categoría eliminada", msg)
}

func TestSupplierRepo_CreateEnviaTodosLosCampos(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/proveedores", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Destilería Norte", body["nombre"])
		assert.Equal(t, "Luis", body["contacto"])
		assert.Equal(t, "+34 600 000 000", body["telefono"])
		assert.Equal(t, "ventas@norte.es", body["email"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"p1","nombre":"Destilería Norte"}`))
	})

	out, err := backend.NewSupplierRepository(client).Create(context.Background(), entity.Supplier{
		Name: "Destilería Norte", Contact: "Luis", Phone: "+34 600 000 000", Email: "ventas@norte.es",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", out.ID)
}

func TestProductRepo_FiltraPorCategoria(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("categoria"))
		assert.False(t, r.URL.Query().Has("proveedor"))
		_, _ = w.Write([]byte(`[{"_id":"m25","nombre":"Macallan 25","precio":"1899.90","stock":2}]`))
	})

	out, err := backend.NewProductRepository(client).List(context.Background(), repository.ProductFilter{CategoryID: "1"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Macallan 25", out[0].Name)
	assert.True(t, decimal.RequireFromString("1899.90").Equal(out[0].Price))
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

const cartJSON = `{"carrito":{"_id":"c1","total":90,"items":[
	{"_id":"i1","cantidad":3,"precioUnitario":30,"subtotal":90,
	 "producto":{"_id":"p1","nombre":"Ron Zacapa","precio":30,"stock":5}}]}}`

func TestCartRepo_PropagaSessionIDEnCadaPeticion(t *testing.T) {
	who := entity.Identity{SessionID: "sess-123"}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-123", r.URL.Query().Get(backend.SessionQueryParam))
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"_id":"c1","total":0,"items":[]}`))
		default:
			_, _ = w.Write([]byte(cartJSON))
		}
	})
	repo := backend.NewCartRepository(client)

	cart, err := repo.Get(context.Background(), who)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart, err = repo.UpdateItemQuantity(context.Background(), who, "i1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	_, err = repo.RemoveItem(context.Background(), who, "i1")
	require.NoError(t, err)
}

func TestCartRepo_UpdateEnviaCantidad(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/carritos/items/i1", r.URL.Path)
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["cantidad"])
		_, _ = w.Write([]byte(cartJSON))
	})

	cart, err := backend.NewCartRepository(client).UpdateItemQuantity(context.Background(), entity.Identity{SessionID: "s"}, "i1", 3)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(cart.Total))
	assert.True(t, cart.Total.Equal(cart.SubtotalSum()))
}

func TestCartRepo_SinCarritoDevuelveNil(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Carrito no encontrado"}`))
	})

	cart, err := backend.NewCartRepository(client).Get(context.Background(), entity.Identity{SessionID: "s"})
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartRepo_RechazoPorStock(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Stock insuficiente"}`))
	})

	_, err := backend.NewCartRepository(client).UpdateItemQuantity(context.Background(), entity.Identity{SessionID: "s"}, "i1", 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "Stock insuficiente", domain.UserMessage(err, ""))
}
