package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// summarize calcula las facetas sobre el filtro relajado (solo activo y búsqueda): categoría,
// precio y atributos del filtro principal no influyen en los conteos. Los errores se propagan tal cual.
func summarize(ctx context.Context, reader repository.CatalogReader, f catalog.ProductFilter) (*dto.FilterSummaryDto, error) {
	relaxed := f.Relaxed()

	categories, err := reader.CategoryFacets(ctx, relaxed)
	if err != nil {
		return nil, err
	}
	prices, err := reader.PriceRanges(ctx, relaxed)
	if err != nil {
		return nil, err
	}
	valueCounts, err := reader.AttributeValueCounts(ctx, relaxed)
	if err != nil {
		return nil, err
	}

	return summaryToDto(catalog.Summary{
		Categories:  categories,
		PriceRanges: prices,
		Attributes:  catalog.GroupAttributeFacets(valueCounts),
	}), nil
}

// summaryToDto las listas vacías se serializan como [] y no como null.
func summaryToDto(s catalog.Summary) *dto.FilterSummaryDto {
	out := &dto.FilterSummaryDto{
		Categories:  make([]dto.CategoryCountDto, 0, len(s.Categories)),
		PriceRanges: make([]dto.PriceRangeDto, 0, len(s.PriceRanges)),
		Attributes:  make([]dto.AttributeFacetDto, 0, len(s.Attributes)),
	}
	for _, c := range s.Categories {
		if c.ProductCount < 1 {
			continue
		}
		out.Categories = append(out.Categories, dto.CategoryCountDto{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			ProductCount: c.ProductCount,
		})
	}
	for _, p := range s.PriceRanges {
		out.PriceRanges = append(out.PriceRanges, dto.PriceRangeDto{
			CurrencyCode:   p.CurrencyCode,
			CurrencySymbol: p.CurrencySymbol,
			MinPrice:       p.Min,
			MaxPrice:       p.Max,
		})
	}
	for _, a := range s.Attributes {
		values := make([]dto.AttributeValueCountDto, 0, len(a.Values))
		for _, v := range a.Values {
			values = append(values, dto.AttributeValueCountDto{
				ValueID:      v.ValueID,
				ValueName:    v.ValueName,
				ProductCount: v.ProductCount,
			})
		}
		out.Attributes = append(out.Attributes, dto.AttributeFacetDto{
			AttributeID:   a.AttributeID,
			AttributeName: a.AttributeName,
			Values:        values,
		})
	}
	return out
}
