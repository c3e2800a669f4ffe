package entity

import "github.com/shopspring/decimal"

// Product representa un licor del catálogo. El storefront solo lo consulta;
// precio y stock son propiedad del backend.
type Product struct {
	ID         string          `json:"_id"`
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Image      string          `json:"imagen,omitempty"`
	Stock      int             `json:"stock"`
	CategoryID string          `json:"categoria,omitempty"`
	SupplierID string          `json:"proveedor,omitempty"`
}

// DefaultProductImage se usa cuando el producto no trae imagen.
const DefaultProductImage = "/assets/img/licor_default.svg"

// ImageOrDefault devuelve la imagen del producto o la imagen por defecto.
func (p Product) ImageOrDefault() string {
	if p.Image == "" {
		return DefaultProductImage
	}
	return p.Image
}

// InStock indica si quedan unidades disponibles.
func (p Product) InStock() bool { return p.Stock > 0 }
