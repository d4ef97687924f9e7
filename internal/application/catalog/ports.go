package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CatalogSession abre la sesión de lectura de una petición y entrega a fn un lector atado a ella.
// Todas las consultas de una petición (idioma, conteo, página, hijos, facetas) usan el mismo lector.
type CatalogSession interface {
	ReadOnly(ctx context.Context, fn func(reader repository.CatalogReader) error) error
}

// ResultCache caché opcional de respuestas completas por petición normalizada.
// Los errores de caché nunca hacen fallar la petición.
type ResultCache interface {
	Get(ctx context.Context, q catalog.Query) (*dto.FilterProductsResponse, bool, error)
	Set(ctx context.Context, q catalog.Query, resp *dto.FilterProductsResponse) error
}
