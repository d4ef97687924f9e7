package entity

import "time"

// SoftDelete marca lógica de borrado compartida por todas las entidades del catálogo.
// Ninguna lectura del motor de filtrado debe exponer filas con IsDeleted = true.
type SoftDelete struct {
	IsDeleted bool
	DeletedAt *time.Time
}

// Live indica si la fila sigue vigente (no borrada lógicamente).
func (s SoftDelete) Live() bool {
	return !s.IsDeleted
}
