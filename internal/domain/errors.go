package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los callers deciden con
// errors.Is en vez de interpretar texto.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
