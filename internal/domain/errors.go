package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnknownPlan: se dereferenció un nombre de plan que no existe en el
	// catálogo (plan almacenado en una empresa, columna de comparación o
	// destino de un descuento). Señala un problema de integridad de datos
	// entre el directorio y el catálogo: siempre se propaga, nunca se
	// reemplaza por un valor por defecto.
	ErrUnknownPlan = errors.New("plan no registrado en el catálogo")

	ErrCompanyNotFound = errors.New("empresa no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidCatalog  = errors.New("catálogo inválido")
)
