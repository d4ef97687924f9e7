package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// LanguageRepository búsqueda de idiomas activos.
type LanguageRepository interface {
	// FindActiveByCode devuelve nil, nil si no hay un idioma activo con ese código.
	FindActiveByCode(ctx context.Context, code string) (*entity.Language, error)
}

// CatalogReader puerto de lectura del catálogo (DIP). Ninguna implementación puede
// devolver filas borradas lógicamente.
type CatalogReader interface {
	LanguageRepository

	// CountProducts total de productos que cumplen el filtro, sin orden ni paginación.
	CountProducts(ctx context.Context, f catalog.ProductFilter) (int, error)
	// ListProducts una página de productos con categoría, proveedor y moneda cargados.
	ListProducts(ctx context.Context, f catalog.ProductFilter, s catalog.Sort, offset, limit int) ([]*entity.Product, error)

	// Cargas por lote para la proyección; languageID vacío omite textos localizados.
	ListLocalizations(ctx context.Context, productIDs []string, languageID string) ([]entity.ProductLocalized, error)
	ListMedia(ctx context.Context, productIDs []string) ([]entity.ProductMedia, error)
	ListAttributeAssignments(ctx context.Context, productIDs []string, languageID string) ([]entity.ProductAttributeAssignment, error)

	// Agregaciones del resumen de facetas.
	CategoryFacets(ctx context.Context, f catalog.ProductFilter) ([]catalog.CategoryFacet, error)
	PriceRanges(ctx context.Context, f catalog.ProductFilter) ([]catalog.PriceRange, error)
	AttributeValueCounts(ctx context.Context, f catalog.ProductFilter) ([]catalog.AttributeValueCount, error)
}
