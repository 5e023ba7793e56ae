package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("registro duplicado")
	ErrInvalidReading = errors.New("el índice actual debe ser superior al índice anterior")
)
