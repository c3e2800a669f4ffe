package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
	"github.com/jhoicas/licores-deluxe/pkg/money"
)

const (
	msgLoadFailed    = "Error al cargar el carrito"
	msgUpdated       = "Cantidad actualizada"
	msgUpdateFailed  = "Error al actualizar"
	msgRemoved       = "Producto eliminado del carrito"
	msgRemoveFailed  = "Error al eliminar"
	msgMinimumAmount = "la cantidad mínima es 1"
)

// ItemView línea del carrito lista para mostrar.
type ItemView struct {
	entity.CartItem
	UnitPriceText    string `json:"precioUnitarioTexto"`
	SubtotalText     string `json:"subtotalTexto"`
	IncrementEnabled bool   `json:"puedeIncrementar"`
	DecrementEnabled bool   `json:"puedeDecrementar"`
}

// ViewModel instantánea inmutable del carrito.
type ViewModel struct {
	Items        []ItemView        `json:"items"`
	Total        decimal.Decimal   `json:"total"`
	TotalText    string            `json:"totalTexto"`
	Empty        bool              `json:"vacio"`
	Loading      bool              `json:"cargando"`
	Busy         bool              `json:"ocupado"`
	Notification *dto.Notification `json:"notificacion,omitempty"`
}

// View vista del carrito de una identidad concreta. El snapshot solo se
// reemplaza entero con la respuesta del backend; un rechazo lo deja intacto.
type View struct {
	repo repository.CartRepository
	who  entity.Identity
	fmtr *money.Formatter
	log  zerolog.Logger

	mu      sync.Mutex
	cart    *entity.Cart
	loading bool
	busy    bool
	notice  *dto.Notification
}

// NewView construye la vista para who.
func NewView(repo repository.CartRepository, who entity.Identity, log zerolog.Logger) *View {
	return &View{repo: repo, who: who, fmtr: money.Default, log: log}
}

// Load obtiene el carrito. Sin carrito la vista queda vacía.
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	c, err := v.repo.Get(ctx, v.who)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.log.Error().Err(err).Str("session_id", v.who.SessionID).Msg("error al cargar el carrito")
		v.notice = dto.Failure(domain.UserMessage(err, msgLoadFailed))
		return err
	}
	v.cart = c
	return nil
}

// SetQuantity fija la cantidad de una línea. Cantidades menores que 1 no se
// envían. El stock conocido no bloquea la petición: el backend decide.
func (v *View) SetQuantity(ctx context.Context, itemID string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msgMinimumAmount)
	}
	return v.mutate(ctx, msgUpdated, msgUpdateFailed, func(ctx context.Context) (*entity.Cart, error) {
		return v.repo.UpdateItemQuantity(ctx, v.who, itemID, n)
	})
}

// Increment suma una unidad a la línea.
func (v *View) Increment(ctx context.Context, itemID string) error {
	it, ok := v.item(itemID)
	if !ok {
		return domain.ErrNotFound
	}
	return v.SetQuantity(ctx, itemID, it.Quantity+1)
}

// Decrement resta una unidad a la línea.
func (v *View) Decrement(ctx context.Context, itemID string) error {
	it, ok := v.item(itemID)
	if !ok {
		return domain.ErrNotFound
	}
	return v.SetQuantity(ctx, itemID, it.Quantity-1)
}

// RemoveItem elimina la línea del carrito.
func (v *View) RemoveItem(ctx context.Context, itemID string) error {
	return v.mutate(ctx, msgRemoved, msgRemoveFailed, func(ctx context.Context) (*entity.Cart, error) {
		return v.repo.RemoveItem(ctx, v.who, itemID)
	})
}

func (v *View) mutate(ctx context.Context, okMsg, failMsg string, call func(context.Context) (*entity.Cart, error)) error {
	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return domain.ErrBusy
	}
	v.busy = true
	v.mu.Unlock()

	c, err := call(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = false
	if err != nil {
		v.log.Warn().Err(err).Str("session_id", v.who.SessionID).Msg("el backend rechazó el cambio en el carrito")
		v.notice = dto.Failure(domain.UserMessage(err, failMsg))
		return err
	}
	v.cart = c
	v.notice = dto.Success(okMsg)
	return nil
}

func (v *View) item(itemID string) (entity.CartItem, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cart.Item(itemID)
}

// Cart devuelve una copia del snapshot actual (nil si no hay carrito).
func (v *View) Cart() *entity.Cart {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cart == nil {
		return nil
	}
	cp := *v.cart
	cp.Items = append([]entity.CartItem(nil), v.cart.Items...)
	return &cp
}

// Empty indica si no hay líneas que mostrar.
func (v *View) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cart.IsEmpty()
}

// Notify fija el aviso a mostrar.
func (v *View) Notify(n *dto.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice = n
}

// View devuelve la instantánea para la plantilla o el cliente JSON.
func (v *View) View() ViewModel {
	v.mu.Lock()
	defer v.mu.Unlock()

	vm := ViewModel{
		Items:        []ItemView{},
		Empty:        v.cart.IsEmpty(),
		Loading:      v.loading,
		Busy:         v.busy,
		Notification: v.notice.Clone(),
	}
	if v.cart != nil {
		vm.Total = v.cart.Total
		for _, it := range v.cart.Items {
			vm.Items = append(vm.Items, ItemView{
				CartItem:         it,
				UnitPriceText:    v.fmtr.Format(it.UnitPrice),
				SubtotalText:     v.fmtr.Format(it.Subtotal),
				IncrementEnabled: it.CanIncrement(),
				DecrementEnabled: it.CanDecrement(),
			})
		}
	}
	vm.TotalText = v.fmtr.Format(vm.Total)
	return vm
}
