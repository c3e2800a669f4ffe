package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoriesPath = "/api/categorias"

// CategoryRepo implementación del puerto CategoryRepository sobre la API REST.
type CategoryRepo struct {
	c *Client
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(c *Client) *CategoryRepo {
	return &CategoryRepo{c: c}
}

type categoryPayload struct {
	Name string `json:"nombre"`
}

// List obtiene todas las categorías.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := r.c.Do(ctx, "categorias", http.MethodGet, categoriesPath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	return out, nil
}

// Create crea una categoría (POST a la colección).
func (r *CategoryRepo) Create(ctx context.Context, category entity.Category) (*entity.Category, error) {
	var out entity.Category
	in := categoryPayload{Name: category.Name}
	if err := r.c.Do(ctx, "categorias", http.MethodPost, categoriesPath, nil, in, &out); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	return &out, nil
}

// Update actualiza una categoría existente (PUT al ítem).
func (r *CategoryRepo) Update(ctx context.Context, category entity.Category) (*entity.Category, error) {
	var out entity.Category
	in := categoryPayload{Name: category.Name}
	path := categoriesPath + "/" + url.PathEscape(category.ID)
	if err := r.c.Do(ctx, "categorias", http.MethodPut, path, nil, in, &out); err != nil {
		return nil, fmt.Errorf("actualizar categoría: %w", err)
	}
	return &out, nil
}

// Delete elimina una categoría y devuelve el mensaje del backend.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (string, error) {
	msg, err := r.c.deleteWithMessage(ctx, "categorias", categoriesPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("eliminar categoría: %w", err)
	}
	return msg, nil
}
