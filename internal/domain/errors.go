package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthenticated    = errors.New("identidad no verificada")
	ErrForbidden          = errors.New("permisos insuficientes")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidOperation   = errors.New("operación inválida para el estado actual")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
