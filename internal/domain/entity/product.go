package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por un proveedor en el marketplace.
// Los nombres de categoría, proveedor y moneda se cargan junto con la fila para la proyección.
type Product struct {
	ID          string
	Name        string
	Description *string // descripción base, opcional
	CategoryID  string
	ProviderID  string
	CurrencyID  string
	Price       decimal.Decimal // precio en la moneda CurrencyID
	Quantity    int
	IsActive    bool
	SoftDelete
	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category
	Provider *Provider
	Currency *Currency

	Localizations []ProductLocalized
	Media         []ProductMedia
	Attributes    []ProductAttributeAssignment
}

// ProductLocalized sobrescribe nombre y descripción para un idioma.
// Como máximo una fila no borrada por (ProductID, LanguageID).
type ProductLocalized struct {
	ID          string
	ProductID   string
	LanguageID  string
	Name        string
	Description *string
	IsActive    bool
	SoftDelete
}

// ProductMedia enlace a una imagen del producto.
type ProductMedia struct {
	ID        string
	ProductID string
	URL       string
	SoftDelete
}
