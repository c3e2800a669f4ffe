// Package money formatea importes para las vistas y el resumen PDF.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con dos decimales según el idioma de la tienda.
type Formatter struct {
	printer *message.Printer
	symbol  string
	point   string
}

// NewFormatter construye un formateador para el idioma y símbolo indicados.
func NewFormatter(tag language.Tag, symbol string) *Formatter {
	p := message.NewPrinter(tag)
	point := strings.Trim(p.Sprint(number.Decimal(1.5, number.Scale(1))), "15")
	return &Formatter{printer: p, symbol: symbol, point: point}
}

// Default es el formateador de la tienda (español, "$").
var Default = NewFormatter(language.Spanish, "$")

// Format devuelve el importe con símbolo y dos decimales, p. ej. "$12,50".
// Los dígitos salen del decimal; x/text solo agrupa la parte entera.
func (f *Formatter) Format(amount decimal.Decimal) string {
	r := amount.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	fixed := r.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]
	whole := f.printer.Sprint(number.Decimal(r.Truncate(0).IntPart()))
	return sign + f.symbol + whole + f.point + cents
}

// Format usa el formateador por defecto.
func Format(amount decimal.Decimal) string {
	return Default.Format(amount)
}
