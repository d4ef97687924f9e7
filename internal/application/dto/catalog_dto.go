package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttributeFilterRequest filtro dinámico: productos con algún valor de ValueIDs para AttributeID.
type AttributeFilterRequest struct {
	AttributeID string   `json:"attributeId"`
	ValueIDs    []string `json:"valueIds"`
}

// FilterProductsRequest entrada del filtrado del catálogo. Los valores fuera de rango se corrigen
// en silencio (page < 1 -> 1, pageSize fuera de 1..100 -> 10).
type FilterProductsRequest struct {
	Page           int                      `json:"page"`
	PageSize       int                      `json:"pageSize"`
	LanguageCode   string                   `json:"languageCode,omitempty"`
	IsActive       *bool                    `json:"isActive,omitempty"`
	Search         string                   `json:"search,omitempty"`
	CategoryID     string                   `json:"categoryId,omitempty"`
	CurrencyID     string                   `json:"currencyId,omitempty"`
	MinPrice       *decimal.Decimal         `json:"minPrice,omitempty"`
	MaxPrice       *decimal.Decimal         `json:"maxPrice,omitempty"`
	Attributes     []AttributeFilterRequest `json:"attributes,omitempty"`
	SortBy         string                   `json:"sortBy,omitempty"`        // name | price | createdAt
	SortDirection  string                   `json:"sortDirection,omitempty"` // asc | desc
	IncludeSummary bool                     `json:"includeSummary,omitempty"`
}

// AttributeAssignmentDto atributo y valor del producto, en idioma base y localizados.
type AttributeAssignmentDto struct {
	AttributeID            string  `json:"attributeId"`
	AttributeName          string  `json:"attributeName"`
	LocalizedAttributeName *string `json:"localizedAttributeName,omitempty"`
	ValueID                string  `json:"valueId"`
	Value                  string  `json:"value"`
	LocalizedValue         *string `json:"localizedValue,omitempty"`
}

// ProductDto producto proyectado para la respuesta.
// Name/Description son siempre los textos a mostrar: localizados si existen, base si no.
type ProductDto struct {
	ID              string                   `json:"id"`
	BaseName        string                   `json:"baseName"`
	BaseDescription *string                  `json:"baseDescription,omitempty"`
	Name            string                   `json:"name"`
	Description     *string                  `json:"description,omitempty"`
	Localized       bool                     `json:"localized"`
	CategoryID      string                   `json:"categoryId"`
	CategoryName    string                   `json:"categoryName"`
	ProviderID      string                   `json:"providerId"`
	ProviderName    string                   `json:"providerName"`
	CurrencyID      string                   `json:"currencyId"`
	CurrencyCode    string                   `json:"currencyCode"`
	CurrencySymbol  string                   `json:"currencySymbol"`
	CurrencyName    string                   `json:"currencyName"`
	Price           decimal.Decimal          `json:"price"`
	Quantity        int                      `json:"quantity"`
	IsActive        bool                     `json:"isActive"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
	ImageURLs       []string                 `json:"imageUrls"`
	Attributes      []AttributeAssignmentDto `json:"attributes"`
}

// CategoryCountDto faceta de categoría.
type CategoryCountDto struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ProductCount int    `json:"productCount"`
}

// PriceRangeDto rango observado en una moneda.
type PriceRangeDto struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
	MinPrice       decimal.Decimal `json:"minPrice"`
	MaxPrice       decimal.Decimal `json:"maxPrice"`
}

// AttributeValueCountDto hoja del árbol de facetas.
type AttributeValueCountDto struct {
	ValueID      string `json:"valueId"`
	ValueName    string `json:"valueName"`
	ProductCount int    `json:"productCount"`
}

// AttributeFacetDto atributo con sus valores y conteos.
type AttributeFacetDto struct {
	AttributeID   string                   `json:"attributeId"`
	AttributeName string                   `json:"attributeName"`
	Values        []AttributeValueCountDto `json:"values"`
}

// FilterSummaryDto facetas calculadas con el filtro relajado (activo + búsqueda).
// PriceRanges vacío significa "sin datos de precio", nunca un rango 0-0.
type FilterSummaryDto struct {
	Categories  []CategoryCountDto  `json:"categories"`
	PriceRanges []PriceRangeDto     `json:"priceRanges"`
	Attributes  []AttributeFacetDto `json:"attributes"`
}

// FilterProductsResponse página de productos más metadatos y resumen opcional.
type FilterProductsResponse struct {
	Products      []ProductDto      `json:"products"`
	TotalCount    int               `json:"totalCount"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	TotalPages    int               `json:"totalPages"`
	FilterSummary *FilterSummaryDto `json:"filterSummary,omitempty"`
}
