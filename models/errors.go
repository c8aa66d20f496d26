package models

import "errors"

// Tipos de error de negocio; el controlador los traduce a códigos HTTP.
var (
	ErrNotFound     = errors.New("registro no encontrado")
	ErrConflict     = errors.New("el registro entra en conflicto con uno existente")
	ErrValidation   = errors.New("datos inválidos")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("operación no permitida")
)
