package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("registro no encontrado en destino")
	ErrQuery          = errors.New("error consultando la base")
	ErrWrite          = errors.New("error escribiendo en la base")
	ErrSchemaMismatch = errors.New("columnas o tipos inesperados en el origen")
	ErrDuplicate      = errors.New("registro duplicado")
	ErrInvalidConfig  = errors.New("configuración inválida")
)
