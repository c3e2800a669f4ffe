package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
	"github.com/jhoicas/licores-deluxe/pkg/money"
)

// FeaturedLimit cantidad de categorías y productos destacados en la portada.
const FeaturedLimit = 3

// ProductCard producto listo para la vitrina.
type ProductCard struct {
	ID        string `json:"_id"`
	Name      string `json:"nombre"`
	PriceText string `json:"precio"`
	Image     string `json:"imagen"`
	InStock   bool   `json:"disponible"`
}

// HomeView datos de la portada.
type HomeView struct {
	Categories []entity.Category `json:"categorias"`
	Featured   []ProductCard     `json:"destacados"`
}

// ShopView listado de la tienda, opcionalmente filtrado por categoría.
type ShopView struct {
	Categories       []entity.Category `json:"categorias"`
	Products         []ProductCard     `json:"productos"`
	SelectedCategory string            `json:"categoriaSeleccionada,omitempty"`
}

// UseCase lectura del catálogo para la vitrina. Los fallos del backend no
// interrumpen la página: la sección afectada queda vacía.
type UseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	money      *money.Formatter
	log        zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(categories repository.CategoryRepository, products repository.ProductRepository, log zerolog.Logger) *UseCase {
	return &UseCase{categories: categories, products: products, money: money.Default, log: log}
}

// Home devuelve las categorías y productos destacados.
func (uc *UseCase) Home(ctx context.Context) HomeView {
	return HomeView{
		Categories: limit(uc.listCategories(ctx), FeaturedLimit),
		Featured:   limit(uc.listProducts(ctx, repository.ProductFilter{}), FeaturedLimit),
	}
}

// Shop devuelve el listado de productos, filtrado por categoryID si no está vacío.
func (uc *UseCase) Shop(ctx context.Context, categoryID string) ShopView {
	return ShopView{
		Categories:       uc.listCategories(ctx),
		Products:         uc.listProducts(ctx, repository.ProductFilter{CategoryID: categoryID}),
		SelectedCategory: categoryID,
	}
}

func (uc *UseCase) listCategories(ctx context.Context) []entity.Category {
	cats, err := uc.categories.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("catálogo: no se pudieron cargar las categorías")
		return []entity.Category{}
	}
	return cats
}

func (uc *UseCase) listProducts(ctx context.Context, f repository.ProductFilter) []ProductCard {
	ps, err := uc.products.List(ctx, f)
	if err != nil {
		uc.log.Warn().Err(err).Str("categoria", f.CategoryID).Msg("catálogo: no se pudieron cargar los productos")
		return []ProductCard{}
	}
	cards := make([]ProductCard, 0, len(ps))
	for _, p := range ps {
		cards = append(cards, ProductCard{
			ID:        p.ID,
			Name:      p.Name,
			PriceText: uc.money.Format(p.Price),
			Image:     p.ImageOrDefault(),
			InStock:   p.InStock(),
		})
	}
	return cards
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
