// Package catalog contiene el caso de uso de filtrado facetado del catálogo: resolución de idioma,
// conteo y página, proyección a DTO y resumen de facetas.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// FilterProductsUseCase filtra, ordena, pagina y proyecta productos; opcionalmente agrega facetas.
// Sin estado entre peticiones: cada ejecución abre su propia sesión de lectura.
type FilterProductsUseCase struct {
	session CatalogSession
	cache   ResultCache
	log     *logger.Logger
}

// NewFilterProductsUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewFilterProductsUseCase(session CatalogSession, cache ResultCache, log *logger.Logger) *FilterProductsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FilterProductsUseCase{session: session, cache: cache, log: log}
}

// QueryFromRequest traduce el DTO de entrada a la consulta de dominio (sin normalizar).
func QueryFromRequest(req dto.FilterProductsRequest) catalog.Query {
	attrs := make([]catalog.AttributeFilter, 0, len(req.Attributes))
	for _, a := range req.Attributes {
		attrs = append(attrs, catalog.AttributeFilter{AttributeID: a.AttributeID, ValueIDs: a.ValueIDs})
	}
	return catalog.Query{
		Filter: catalog.ProductFilter{
			IsActive:   req.IsActive,
			Search:     req.Search,
			CategoryID: req.CategoryID,
			CurrencyID: req.CurrencyID,
			MinPrice:   req.MinPrice,
			MaxPrice:   req.MaxPrice,
			Attributes: attrs,
		},
		Sort:           catalog.ParseSort(req.SortBy, req.SortDirection),
		Page:           req.Page,
		PageSize:       req.PageSize,
		LanguageCode:   req.LanguageCode,
		IncludeSummary: req.IncludeSummary,
	}
}

// Execute único punto que traduce errores: domain.ErrLanguageNotFound pasa tal cual; cualquier
// otro fallo se devuelve como domain.ErrInternal envolviendo la causa. Nunca hay resultados parciales.
func (uc *FilterProductsUseCase) Execute(ctx context.Context, req dto.FilterProductsRequest) (*dto.FilterProductsResponse, error) {
	q := QueryFromRequest(req).Normalize()

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, q)
		if err != nil {
			uc.log.Warn().Err(err).Msg("catalog: lectura de caché")
		} else if ok {
			uc.log.Debug().Bool("cache_hit", true).Int("total", cached.TotalCount).Msg("catalog: filtro")
			return cached, nil
		}
	}

	var resp *dto.FilterProductsResponse
	err := uc.session.ReadOnly(ctx, func(reader repository.CatalogReader) error {
		r, err := uc.run(ctx, reader, q)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	uc.log.Debug().
		Str("language", q.LanguageCode).
		Int("total", resp.TotalCount).
		Int("page", resp.Page).
		Bool("summary", q.IncludeSummary).
		Bool("cache_hit", false).
		Msg("catalog: filtro")

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, q, resp); err != nil {
			uc.log.Warn().Err(err).Msg("catalog: escritura de caché")
		}
	}
	return resp, nil
}

func translateError(err error) error {
	if errors.Is(err, domain.ErrLanguageNotFound) {
		return domain.ErrLanguageNotFound
	}
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}

// run pipeline de la petición dentro de la sesión: idioma -> conteo -> página -> hijos -> facetas.
func (uc *FilterProductsUseCase) run(ctx context.Context, reader repository.CatalogReader, q catalog.Query) (*dto.FilterProductsResponse, error) {
	lang, err := ResolveLanguage(ctx, reader, q.LanguageCode)
	if err != nil {
		return nil, err
	}
	languageID := ""
	if lang != nil {
		languageID = lang.ID
	}

	// El conteo va antes que orden y ventana; no depende de ellos.
	total, err := reader.CountProducts(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.FilterProductsResponse{
		Products:   []dto.ProductDto{},
		TotalCount: total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: catalog.TotalPages(total, q.PageSize),
	}

	// Página más allá del final: lista vacía con el total correcto, sin consultar la página.
	if total > 0 && q.Offset() < total {
		products, err := reader.ListProducts(ctx, q.Filter, q.Sort, q.Offset(), q.PageSize)
		if err != nil {
			return nil, err
		}
		resp.Products, err = uc.project(ctx, reader, products, languageID)
		if err != nil {
			return nil, err
		}
	}

	if q.IncludeSummary {
		summary, err := summarize(ctx, reader, q.Filter)
		if err != nil {
			return nil, err
		}
		resp.FilterSummary = summary
	}
	return resp, nil
}

// project carga por lote los hijos de la página (sin N+1) y proyecta a DTO.
func (uc *FilterProductsUseCase) project(ctx context.Context, reader repository.CatalogReader, products []*entity.Product, languageID string) ([]dto.ProductDto, error) {
	if len(products) == 0 {
		return []dto.ProductDto{}, nil
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	var locs []entity.ProductLocalized
	if languageID != "" {
		var err error
		locs, err = reader.ListLocalizations(ctx, ids, languageID)
		if err != nil {
			return nil, err
		}
	}
	media, err := reader.ListMedia(ctx, ids)
	if err != nil {
		return nil, err
	}
	assigns, err := reader.ListAttributeAssignments(ctx, ids, languageID)
	if err != nil {
		return nil, err
	}

	return projectProducts(products, languageID, indexChildren(languageID, locs, media, assigns)), nil
}
