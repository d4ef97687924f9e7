// Package catalog contiene las reglas puras del motor de filtrado del catálogo:
// normalización de la petición, filtros, orden, paginación y facetas.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AttributeFilter restringe a productos con al menos una asignación activa cuyo valor
// pertenece a AttributeID y está en ValueIDs. Los valores se combinan con OR.
type AttributeFilter struct {
	AttributeID string
	ValueIDs    []string
}

// ProductFilter predicado completo sobre productos. Los filtros de atributo se combinan con AND.
// Los productos borrados lógicamente quedan excluidos siempre, no es un campo del filtro.
type ProductFilter struct {
	IsActive   *bool // nil = activos e inactivos
	Search     string
	CategoryID string
	CurrencyID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Attributes []AttributeFilter
}

// Relaxed devuelve el filtro usado por el resumen de facetas: solo activo y búsqueda.
func (f ProductFilter) Relaxed() ProductFilter {
	return ProductFilter{IsActive: f.IsActive, Search: f.Search}
}

// HasSearch indica si la búsqueda libre aplica.
func (f ProductFilter) HasSearch() bool {
	return f.Search != ""
}

// NormalizeSearch recorta espacios; un término en blanco no filtra.
func NormalizeSearch(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeAttributeFilters descarta filtros sin atributo o sin valores y elimina
// ids de valor repetidos, conservando el orden de entrada.
func NormalizeAttributeFilters(in []AttributeFilter) []AttributeFilter {
	out := make([]AttributeFilter, 0, len(in))
	for _, af := range in {
		attrID := strings.TrimSpace(af.AttributeID)
		if attrID == "" {
			continue
		}
		seen := make(map[string]struct{}, len(af.ValueIDs))
		values := make([]string, 0, len(af.ValueIDs))
		for _, v := range af.ValueIDs {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		out = append(out, AttributeFilter{AttributeID: attrID, ValueIDs: values})
	}
	return out
}
