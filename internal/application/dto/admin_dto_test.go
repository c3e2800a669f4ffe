package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

func TestCategoryForm_Validate(t *testing.T) {
	assert.NoError(t, dto.CategoryForm{Name: "Ron"}.Validate())
	err := dto.CategoryForm{Name: "   "}.Validate()
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSupplierForm_Validate(t *testing.T) {
	cases := []struct {
		name string
		form dto.SupplierForm
		ok   bool
	}{
		{"solo nombre", dto.SupplierForm{Name: "Destilería Norte"}, true},
		{"email válido", dto.SupplierForm{Name: "Norte", Email: "ventas@norte.es"}, true},
		{"sin nombre", dto.SupplierForm{Email: "ventas@norte.es"}, false},
		{"email inválido", dto.SupplierForm{Name: "Norte", Email: "no-es-email"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			}
		})
	}
}

func TestSupplierForm_IdaYVuelta(t *testing.T) {
	s := entity.Supplier{ID: "p1", Name: "Norte", Contact: "Luis", Phone: "600", Email: "a@b.es"}
	assert.Equal(t, s, dto.SupplierFormFrom(s).ToEntity("p1"))
}
