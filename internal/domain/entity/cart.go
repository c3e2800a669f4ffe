package entity

import "github.com/shopspring/decimal"

// Cart es el carrito tal como lo calcula el backend. Total y subtotales se toman
// siempre de la respuesta del servidor; nunca se recalculan localmente.
type Cart struct {
	ID    string          `json:"_id"`
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CartItem línea del carrito. Invariante del backend: 1 <= Quantity <= Product.Stock.
type CartItem struct {
	ID        string          `json:"_id"`
	Product   Product         `json:"producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// IsEmpty es true para un carrito ausente o sin líneas.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Item busca una línea por ID.
func (c *Cart) Item(itemID string) (CartItem, bool) {
	if c == nil {
		return CartItem{}, false
	}
	for _, it := range c.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return CartItem{}, false
}

// SubtotalSum suma los subtotales recibidos. Solo se usa para verificar
// coherencia con Total, nunca para reemplazarlo.
func (c *Cart) SubtotalSum() decimal.Decimal {
	sum := decimal.Zero
	if c == nil {
		return sum
	}
	for _, it := range c.Items {
		sum = sum.Add(it.Subtotal)
	}
	return sum
}

// CanDecrement indica si el control "-" debe estar habilitado.
func (i CartItem) CanDecrement() bool { return i.Quantity > 1 }

// CanIncrement indica si el control "+" debe estar habilitado según el stock conocido.
// Es solo una ayuda de UX: el límite autoritativo lo aplica el backend.
func (i CartItem) CanIncrement() bool { return i.Quantity < i.Product.Stock }
