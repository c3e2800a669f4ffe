package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
	"github.com/jhoicas/licores-deluxe/internal/domain/repository"
)

// Summary datos del "Resumen del Pedido" listos para el generador.
type Summary struct {
	Cart        *entity.Cart
	Customer    string
	CheckoutURL string
	GeneratedAt time.Time
}

// SummaryPDFGenerator puerto de salida: genera el PDF del resumen.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary Summary) ([]byte, error)
}

// SummaryUseCase arma el resumen del carrito actual y lo entrega como PDF.
// El pago en sí lo gestiona el backend; aquí solo se enlaza.
type SummaryUseCase struct {
	carts       repository.CartRepository
	generator   SummaryPDFGenerator
	checkoutURL string
	now         func() time.Time
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(carts repository.CartRepository, generator SummaryPDFGenerator, checkoutURL string) *SummaryUseCase {
	return &SummaryUseCase{carts: carts, generator: generator, checkoutURL: checkoutURL, now: time.Now}
}

// DownloadSummaryPDF genera el PDF del carrito de who.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si no hay carrito o está vacío.
func (uc *SummaryUseCase) DownloadSummaryPDF(ctx context.Context, who entity.Identity) ([]byte, string, error) {
	c, err := uc.carts.Get(ctx, who)
	if err != nil {
		return nil, "", fmt.Errorf("resumen: obtener carrito: %w", err)
	}
	if c.IsEmpty() {
		return nil, "", domain.ErrNotFound
	}

	customer := ""
	if who.IsAuthenticated() {
		customer = who.DisplayName()
	}
	pdfBytes, err := uc.generator.GenerateSummaryPDF(ctx, Summary{
		Cart:        c,
		Customer:    customer,
		CheckoutURL: uc.checkoutURL,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("resumen: generar pdf: %w", err)
	}

	ref := c.ID
	if ref == "" {
		ref = "carrito"
	}
	return pdfBytes, fmt.Sprintf("resumen-pedido-%s.pdf", ref), nil
}
