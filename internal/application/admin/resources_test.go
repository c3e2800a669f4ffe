package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licores-deluxe/internal/application/admin"
	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/backend"
	"github.com/jhoicas/licores-deluxe/pkg/config"
)

// fakeAPI backend REST mínimo con una categoría "Whisky" y un producto asociado.
type fakeAPI struct {
	mu      sync.Mutex
	deletes int
}

func (a *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/categorias":
			_, _ = w.Write([]byte(`[{"_id":"1","nombre":"Whisky"}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/productos":
			if r.URL.Query().Get("categoria") == "1" {
				_, _ = w.Write([]byte(`[{"_id":"p1","nombre":"Macallan 25","precio":1899.9,"stock":3,"categoria":"1"}]`))
				return
			}
			_, _ = w.Write([]byte(`[]`))
		case r.Method == http.MethodDelete:
			a.mu.Lock()
			a.deletes++
			a.mu.Unlock()
			_, _ = w.Write([]byte(`{"mensaje":"Categoría eliminada"}`))
		default:
			t.Errorf("petición inesperada %s %s", r.Method, r.URL.String())
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestCategoryResource_BorradoBloqueadoPorProductos(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL}, nil, zerolog.Nop())
	res := admin.NewCategoryResource(backend.NewCategoryRepository(client), backend.NewProductRepository(client))
	screen := admin.NewScreen[entity.Category, dto.CategoryForm](res, admin.CategoryLabels(), alwaysYes, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, screen.Load(ctx))
	outcome, err := screen.Delete(ctx, "1", "Whisky")
	require.NoError(t, err)
	assert.Equal(t, admin.DeleteBlocked, outcome)

	require.NoError(t, screen.Load(ctx))
	vm := screen.View()
	require.NotNil(t, vm.Notification)
	assert.Contains(t, vm.Notification.Dependents, "Macallan 25")
	assert.Equal(t, []string{"Whisky"}, names(vm.Items))
	assert.Zero(t, api.deletes)
}

func TestSupplierResource_DependenciasPorProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos", r.URL.Path)
		assert.Equal(t, "prov-9", r.URL.Query().Get("proveedor"))
		_, _ = w.Write([]byte(`[{"_id":"p1","nombre":"Patrón Silver"},{"_id":"p2","nombre":"Patrón Reposado"}]`))
	}))
	defer srv.Close()

	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL}, nil, zerolog.Nop())
	res := admin.NewSupplierResource(backend.NewSupplierRepository(client), backend.NewProductRepository(client))

	deps, err := res.Dependents(context.Background(), "prov-9")
	require.NoError(t, err)
	assert.Equal(t, []string{"Patrón Silver", "Patrón Reposado"}, deps)
}
