package admin

import (
	"fmt"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/domain/entity"
)

// Labels textos de una pantalla y la forma de precargar su editor.
type Labels[T Entity, F Form] struct {
	Resource     string // etiqueta para logs
	Title        string
	LoadFailed   string
	SaveFailed   string
	DeleteFailed string
	Created      string
	Updated      string
	Deleted      string

	ConfirmDelete func(name string) string
	Blocked       func(name string) string
	FormFrom      func(T) F
}

// CategoryLabels textos de la gestión de categorías.
func CategoryLabels() Labels[entity.Category, dto.CategoryForm] {
	return Labels[entity.Category, dto.CategoryForm]{
		Resource:     "categorias",
		Title:        "Gestión de Categorías",
		LoadFailed:   "Error al cargar categorías",
		SaveFailed:   "Error al guardar la categoría",
		DeleteFailed: "Error al eliminar categoría",
		Created:      "Categoría creada",
		Updated:      "Categoría actualizada",
		Deleted:      "Categoría eliminada correctamente",
		ConfirmDelete: func(name string) string {
			return fmt.Sprintf("¿Estás seguro de eliminar la categoría %q?", name)
		},
		Blocked: func(name string) string {
			return fmt.Sprintf("No se puede eliminar la categoría %q porque tiene productos asociados", name)
		},
		FormFrom: dto.CategoryFormFrom,
	}
}

// SupplierLabels textos de la gestión de proveedores.
func SupplierLabels() Labels[entity.Supplier, dto.SupplierForm] {
	return Labels[entity.Supplier, dto.SupplierForm]{
		Resource:     "proveedores",
		Title:        "Gestión de Proveedores",
		LoadFailed:   "Error al cargar proveedores",
		SaveFailed:   "Error al guardar el proveedor",
		DeleteFailed: "Error al eliminar proveedor",
		Created:      "Proveedor creado",
		Updated:      "Proveedor actualizado",
		Deleted:      "Proveedor eliminado correctamente",
		ConfirmDelete: func(name string) string {
			return fmt.Sprintf("¿Estás seguro de eliminar al proveedor %q?", name)
		},
		Blocked: func(name string) string {
			return fmt.Sprintf("No se puede eliminar al proveedor %q porque tiene productos asociados", name)
		},
		FormFrom: dto.SupplierFormFrom,
	}
}
