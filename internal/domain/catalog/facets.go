package catalog

import "github.com/shopspring/decimal"

// CategoryFacet cantidad de productos por categoría.
type CategoryFacet struct {
	CategoryID   string
	CategoryName string
	ProductCount int
}

// PriceRange precio mínimo y máximo observado en una moneda.
type PriceRange struct {
	CurrencyCode   string
	CurrencySymbol string
	Min            decimal.Decimal
	Max            decimal.Decimal
}

// AttributeValueCount fila plana de la agregación: productos distintos por valor de atributo.
type AttributeValueCount struct {
	AttributeID   string
	AttributeName string
	ValueID       string
	ValueName     string
	ProductCount  int
}

// ValueFacet hoja del árbol atributo → valores.
type ValueFacet struct {
	ValueID      string
	ValueName    string
	ProductCount int
}

// AttributeFacet nodo del árbol de facetas por atributo.
type AttributeFacet struct {
	AttributeID   string
	AttributeName string
	Values        []ValueFacet
}

// Summary resumen de facetas calculado sobre el filtro relajado.
type Summary struct {
	Categories  []CategoryFacet
	PriceRanges []PriceRange
	Attributes  []AttributeFacet
}

// GroupAttributeFacets agrupa las filas por atributo conservando el orden de llegada
// de atributos y valores. Un valor repetido conserva la primera fila.
func GroupAttributeFacets(rows []AttributeValueCount) []AttributeFacet {
	out := make([]AttributeFacet, 0)
	attrIdx := make(map[string]int)
	valueIdx := make(map[string]map[string]int)
	for _, r := range rows {
		i, ok := attrIdx[r.AttributeID]
		if !ok {
			i = len(out)
			attrIdx[r.AttributeID] = i
			valueIdx[r.AttributeID] = make(map[string]int)
			out = append(out, AttributeFacet{
				AttributeID:   r.AttributeID,
				AttributeName: r.AttributeName,
				Values:        []ValueFacet{},
			})
		}
		if _, dup := valueIdx[r.AttributeID][r.ValueID]; dup {
			continue
		}
		valueIdx[r.AttributeID][r.ValueID] = len(out[i].Values)
		out[i].Values = append(out[i].Values, ValueFacet{
			ValueID:      r.ValueID,
			ValueName:    r.ValueName,
			ProductCount: r.ProductCount,
		})
	}
	return out
}
