package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/licores-deluxe/pkg/money"
)

func TestFormat_EspanolDosDecimales(t *testing.T) {
	assert.Equal(t, "$12,50", money.Format(decimal.RequireFromString("12.5")))
	assert.Equal(t, "$0,00", money.Format(decimal.Zero))
}

func TestFormat_Ingles(t *testing.T) {
	f := money.NewFormatter(language.English, "$")
	assert.Equal(t, "$1,250.00", f.Format(decimal.NewFromInt(1250)))
	assert.Equal(t, "$3.99", f.Format(decimal.RequireFromString("3.989")))
}

func TestFormat_ImporteGrandeSinPerderCentimos(t *testing.T) {
	f := money.NewFormatter(language.English, "$")
	assert.Equal(t, "$12,345,678,901,234.57", f.Format(decimal.RequireFromString("12345678901234.57")))
	assert.Equal(t, "$0.10", f.Format(decimal.RequireFromString("0.1")))
	assert.Equal(t, "-$3.99", f.Format(decimal.RequireFromString("-3.989")))
}

func TestFormat_EspanolAgrupaMiles(t *testing.T) {
	assert.Equal(t, "$12.345.678.901.234,57", money.Format(decimal.RequireFromString("12345678901234.57")))
	assert.Equal(t, "$30,00", money.Format(decimal.NewFromInt(30)))
}
