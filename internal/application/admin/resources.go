package admin

import (
	"context"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

var (
	_ Resource[entity.Category, dto.CategoryForm] = (*CategoryResource)(nil)
	_ Resource[entity.Supplier, dto.SupplierForm] = (*SupplierResource)(nil)
)

// CategoryResource categorías; las dependencias son los productos de la categoría.
type CategoryResource struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryResource construye el recurso.
func NewCategoryResource(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryResource {
	return &CategoryResource{categories: categories, products: products}
}

func (r *CategoryResource) List(ctx context.Context) ([]entity.Category, error) {
	return r.categories.List(ctx)
}

func (r *CategoryResource) Create(ctx context.Context, form dto.CategoryForm) error {
	_, err := r.categories.Create(ctx, form.ToEntity(""))
	return err
}

func (r *CategoryResource) Update(ctx context.Context, id string, form dto.CategoryForm) error {
	_, err := r.categories.Update(ctx, form.ToEntity(id))
	return err
}

func (r *CategoryResource) Delete(ctx context.Context, id string) (string, error) {
	return r.categories.Delete(ctx, id)
}

func (r *CategoryResource) Dependents(ctx context.Context, id string) ([]string, error) {
	return productNames(r.products.List(ctx, repository.ProductFilter{CategoryID: id}))
}

// SupplierResource proveedores; las dependencias son los productos que suministra.
type SupplierResource struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewSupplierResource construye el recurso.
func NewSupplierResource(suppliers repository.SupplierRepository, products repository.ProductRepository) *SupplierResource {
	return &SupplierResource{suppliers: suppliers, products: products}
}

func (r *SupplierResource) List(ctx context.Context) ([]entity.Supplier, error) {
	return r.suppliers.List(ctx)
}

func (r *SupplierResource) Create(ctx context.Context, form dto.SupplierForm) error {
	_, err := r.suppliers.Create(ctx, form.ToEntity(""))
	return err
}

func (r *SupplierResource) Update(ctx context.Context, id string, form dto.SupplierForm) error {
	_, err := r.suppliers.Update(ctx, form.ToEntity(id))
	return err
}

func (r *SupplierResource) Delete(ctx context.Context, id string) (string, error) {
	return r.suppliers.Delete(ctx, id)
}

func (r *SupplierResource) Dependents(ctx context.Context, id string) ([]string, error) {
	return productNames(r.products.List(ctx, repository.ProductFilter{SupplierID: id}))
}

func productNames(products []entity.Product, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names, nil
}

// CategoryScreen atajo para la pantalla de categorías.
type CategoryScreen = Screen[entity.Category, dto.CategoryForm]

// SupplierScreen atajo para la pantalla de proveedores.
type SupplierScreen = Screen[entity.Supplier, dto.SupplierForm]
