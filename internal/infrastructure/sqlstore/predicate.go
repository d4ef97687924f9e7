package sqlstore

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	q "github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlquery"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern pasa el término a minúsculas y lo envuelve en %...% escapando comodines.
func searchPattern(term string) string {
	folded := cases.Lower(language.Und).String(term)
	return "%" + likeEscaper.Replace(folded) + "%"
}

// productBase FROM de productos vivos con el predicado completo del filtro.
func productBase(f catalog.ProductFilter) *q.Builder {
	return q.From(live(tableProducts, "p")).Where(productConditions(f)...)
}

// productConditions traduce el filtro a condiciones sobre el alias p.
func productConditions(f catalog.ProductFilter) []q.Condition {
	var conds []q.Condition
	if f.IsActive != nil {
		conds = append(conds, q.Eq("p.is_active", *f.IsActive))
	}
	if f.HasSearch() {
		conds = append(conds, searchCondition(f.Search))
	}
	if f.CategoryID != "" {
		conds = append(conds, q.Eq("p.category_id", f.CategoryID))
	}
	if f.CurrencyID != "" {
		conds = append(conds, q.Eq("p.currency_id", f.CurrencyID))
	}
	if f.MinPrice != nil {
		conds = append(conds, q.Gte("p.price", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, q.Lte("p.price", *f.MaxPrice))
	}
	for _, af := range f.Attributes {
		if af.AttributeID == "" || len(af.ValueIDs) == 0 {
			continue
		}
		conds = append(conds, attributeCondition(af))
	}
	return conds
}

// searchCondition nombre/descripción base o cualquier localización no borrada, en cualquier idioma.
func searchCondition(term string) q.Condition {
	pattern := searchPattern(term)
	localized := q.From(live(tableProductLocalizations, "pl")).
		Select("1").
		Where(
			q.Raw("pl.product_id = p.id"),
			q.Or(
				q.Like("LOWER(pl.name)", pattern),
				q.Like("LOWER(COALESCE(pl.description, ''))", pattern),
			),
		)
	return q.Or(
		q.Like("LOWER(p.name)", pattern),
		q.Like("LOWER(COALESCE(p.description, ''))", pattern),
		q.Exists(localized),
	)
}

// attributeCondition al menos una asignación activa con un valor del atributo dentro del conjunto.
func attributeCondition(af catalog.AttributeFilter) q.Condition {
	values := make([]any, 0, len(af.ValueIDs))
	for _, v := range af.ValueIDs {
		values = append(values, v)
	}
	sub := q.From(live(tableAttributeAssignments, "pa")).
		Select("1").
		Join("INNER JOIN "+live(tableAttributeValues, "pav")+" ON pav.id = pa.value_id").
		Where(
			q.Raw("pa.product_id = p.id"),
			q.Raw("pa.is_active"),
			q.Eq("pav.attribute_id", af.AttributeID),
			q.In("pa.value_id", values...),
		)
	return q.Exists(sub)
}

// sortExpr columna de la clave de orden.
func sortExpr(key catalog.SortKey) string {
	switch key {
	case catalog.SortByName:
		return "p.name"
	case catalog.SortByPrice:
		return "p.price"
	default:
		return "p.created_at"
	}
}

// applySort orden principal más desempate por id para que la paginación sea estable.
func applySort(b *q.Builder, s catalog.Sort) *q.Builder {
	dir := q.Desc
	if s.Direction == catalog.Ascending {
		dir = q.Asc
	}
	return b.OrderBy(sortExpr(s.Key), dir).OrderBy("p.id", q.Asc)
}
