package entity

import "time"

// Category representa una categoría del catálogo.
type Category struct {
	ID   string
	Name string
	SoftDelete
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Provider vendedor que publica productos en el marketplace.
type Provider struct {
	ID   string
	Name string
	SoftDelete
}

// Currency moneda en la que se expresa el precio de un producto.
type Currency struct {
	ID     string
	Code   string // ISO 4217, ej. USD
	Symbol string
	Name   string
	SoftDelete
}

// Language idioma disponible para localizar textos del catálogo.
type Language struct {
	ID       string
	Code     string // ej. "en", "es"
	Name     string
	IsActive bool
	SoftDelete
}
