package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todo fallo del filtrado que no sea ErrLanguageNotFound se expone envuelto en ErrInternal.
var (
	ErrLanguageNotFound = errors.New("idioma no encontrado o inactivo")
	ErrInternal         = errors.New("error interno")
)
