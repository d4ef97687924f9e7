package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	q "github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlquery"
)

var _ repository.CatalogReader = (*CatalogReader)(nil)

// CatalogReader implementación SQL del puerto CatalogReader. Solo lectura; vive lo que dura
// la sesión de la petición que lo creó.
type CatalogReader struct {
	q      Querier
	format q.Placeholder
}

// NewCatalogReader construye el lector sobre q con el formato de placeholder del driver.
func NewCatalogReader(querier Querier, format q.Placeholder) *CatalogReader {
	return &CatalogReader{q: querier, format: format}
}

func (r *CatalogReader) query(ctx context.Context, b *q.Builder) (Rows, error) {
	stmt := b.Build(r.format)
	return r.q.Query(ctx, stmt.SQL, stmt.Args...)
}

// FindActiveByCode busca un idioma activo por código sin distinguir mayúsculas.
func (r *CatalogReader) FindActiveByCode(ctx context.Context, code string) (*entity.Language, error) {
	b := q.From(live(tableLanguages, "l")).
		Select("l.id", "l.code", "l.name", "l.is_active").
		Where(q.Eq("LOWER(l.code)", strings.ToLower(code)), q.Raw("l.is_active")).
		OrderBy("l.id", q.Asc).
		Limit(1)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.FindActiveByCode: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("catalog.FindActiveByCode rows: %w", err)
		}
		return nil, nil
	}
	var l entity.Language
	if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.IsActive); err != nil {
		return nil, fmt.Errorf("catalog.FindActiveByCode scan: %w", err)
	}
	return &l, nil
}

// CountProducts cuenta sobre el predicado sin JOIN de presentación ni orden.
func (r *CatalogReader) CountProducts(ctx context.Context, f catalog.ProductFilter) (int, error) {
	rows, err := r.query(ctx, productBase(f).Count())
	if err != nil {
		return 0, fmt.Errorf("catalog.CountProducts: %w", err)
	}
	defer rows.Close()
	var total int
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, fmt.Errorf("catalog.CountProducts scan: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("catalog.CountProducts rows: %w", err)
	}
	return total, nil
}

// ListProducts página ordenada con los nombres de categoría, proveedor y moneda.
func (r *CatalogReader) ListProducts(ctx context.Context, f catalog.ProductFilter, s catalog.Sort, offset, limit int) ([]*entity.Product, error) {
	b := productBase(f).
		Select(
			"p.id", "p.name", "p.description",
			"p.category_id", "c.name",
			"p.provider_id", "pv.name",
			"p.price", "p.currency_id", "cu.code", "cu.symbol", "cu.name",
			"p.quantity", "p.is_active", "p.created_at", "p.updated_at",
		).
		Join("LEFT JOIN " + live(tableCategories, "c") + " ON c.id = p.category_id").
		Join("LEFT JOIN " + live(tableProviders, "pv") + " ON pv.id = p.provider_id").
		Join("LEFT JOIN " + live(tableCurrencies, "cu") + " ON cu.id = p.currency_id")
	b = applySort(b, s).Limit(int64(limit)).Offset(int64(offset))

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0, limit)
	for rows.Next() {
		var (
			p                           entity.Product
			desc, catName, provName     sql.NullString
			curCode, curSymbol, curName sql.NullString
			createdAt, updatedAt        timeValue
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &desc,
			&p.CategoryID, &catName,
			&p.ProviderID, &provName,
			&p.Price, &p.CurrencyID, &curCode, &curSymbol, &curName,
			&p.Quantity, &p.IsActive, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("catalog.ListProducts scan: %w", err)
		}
		p.Description = nullableString(desc)
		p.CreatedAt = createdAt.t
		p.UpdatedAt = updatedAt.t
		if catName.Valid {
			p.Category = &entity.Category{ID: p.CategoryID, Name: catName.String}
		}
		if provName.Valid {
			p.Provider = &entity.Provider{ID: p.ProviderID, Name: provName.String}
		}
		if curCode.Valid {
			p.Currency = &entity.Currency{ID: p.CurrencyID, Code: curCode.String, Symbol: curSymbol.String, Name: curName.String}
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog.ListProducts rows: %w", err)
	}
	return list, nil
}

func idArgs(ids []string) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

// ListLocalizations localizaciones activas de los productos para un idioma.
func (r *CatalogReader) ListLocalizations(ctx context.Context, productIDs []string, languageID string) ([]entity.ProductLocalized, error) {
	if len(productIDs) == 0 || languageID == "" {
		return nil, nil
	}
	b := q.From(live(tableProductLocalizations, "pl")).
		Select("pl.id", "pl.product_id", "pl.language_id", "pl.name", "pl.description", "pl.is_active").
		Where(
			q.In("pl.product_id", idArgs(productIDs)...),
			q.Eq("pl.language_id", languageID),
			q.Raw("pl.is_active"),
		).
		OrderBy("pl.product_id", q.Asc).
		OrderBy("pl.id", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListLocalizations: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductLocalized
	for rows.Next() {
		var (
			l    entity.ProductLocalized
			desc sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.ProductID, &l.LanguageID, &l.Name, &desc, &l.IsActive); err != nil {
			return nil, fmt.Errorf("catalog.ListLocalizations scan: %w", err)
		}
		l.Description = nullableString(desc)
		list = append(list, l)
	}
	return list, rows.Err()
}

// ListMedia imágenes no borradas de los productos.
func (r *CatalogReader) ListMedia(ctx context.Context, productIDs []string) ([]entity.ProductMedia, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	b := q.From(live(tableProductMedia, "m")).
		Select("m.id", "m.product_id", "m.url").
		Where(q.In("m.product_id", idArgs(productIDs)...)).
		OrderBy("m.product_id", q.Asc).
		OrderBy("m.id", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListMedia: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductMedia
	for rows.Next() {
		var m entity.ProductMedia
		if err := rows.Scan(&m.ID, &m.ProductID, &m.URL); err != nil {
			return nil, fmt.Errorf("catalog.ListMedia scan: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListAttributeAssignments asignaciones activas con atributo y valor; si languageID no es vacío
// agrega el nombre y valor localizados (una fila activa por idioma, la de menor id).
func (r *CatalogReader) ListAttributeAssignments(ctx context.Context, productIDs []string, languageID string) ([]entity.ProductAttributeAssignment, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	b := q.From(live(tableAttributeAssignments, "pa")).
		Select("pa.id", "pa.product_id", "pa.value_id", "pa.is_active", "pav.attribute_id", "pav.value", "pat.name").
		Join("INNER JOIN " + live(tableAttributeValues, "pav") + " ON pav.id = pa.value_id").
		Join("INNER JOIN " + live(tableAttributes, "pat") + " ON pat.id = pav.attribute_id")

	if languageID != "" {
		attrName := q.From(live(tableAttributeLocalizations, "al")).
			Select("al.name").
			Where(q.Raw("al.attribute_id = pat.id"), q.Eq("al.language_id", languageID), q.Raw("al.is_active")).
			OrderBy("al.id", q.Asc).
			Limit(1)
		valueName := q.From(live(tableValueLocalizations, "vl")).
			Select("vl.value").
			Where(q.Raw("vl.value_id = pav.id"), q.Eq("vl.language_id", languageID), q.Raw("vl.is_active")).
			OrderBy("vl.id", q.Asc).
			Limit(1)
		b = b.SelectSub(attrName, "localized_attribute").SelectSub(valueName, "localized_value")
	} else {
		b = b.Select("NULL", "NULL")
	}

	b = b.Where(q.In("pa.product_id", idArgs(productIDs)...), q.Raw("pa.is_active")).
		OrderBy("pa.product_id", q.Asc).
		OrderBy("pat.name", q.Asc).
		OrderBy("pav.value", q.Asc).
		OrderBy("pa.id", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAttributeAssignments: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductAttributeAssignment
	for rows.Next() {
		var (
			a                             entity.ProductAttributeAssignment
			attributeID, value, attrName  string
			localizedAttr, localizedValue sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ValueID, &a.IsActive, &attributeID, &value, &attrName, &localizedAttr, &localizedValue); err != nil {
			return nil, fmt.Errorf("catalog.ListAttributeAssignments scan: %w", err)
		}
		attr := &entity.ProductAttribute{ID: attributeID, Name: attrName}
		if localizedAttr.Valid {
			attr.Localizations = []entity.ProductAttributeLocalized{{
				AttributeID: attributeID, LanguageID: languageID, Name: localizedAttr.String, IsActive: true,
			}}
		}
		val := &entity.ProductAttributeValue{ID: a.ValueID, AttributeID: attributeID, Value: value, Attribute: attr}
		if localizedValue.Valid {
			val.Localizations = []entity.ProductAttributeValueLocalized{{
				ValueID: a.ValueID, LanguageID: languageID, Value: localizedValue.String, IsActive: true,
			}}
		}
		a.Value = val
		list = append(list, a)
	}
	return list, rows.Err()
}

// CategoryFacets productos distintos por categoría viva.
func (r *CatalogReader) CategoryFacets(ctx context.Context, f catalog.ProductFilter) ([]catalog.CategoryFacet, error) {
	b := productBase(f).
		Select("c.id", "c.name", "COUNT(DISTINCT p.id)").
		Join("INNER JOIN "+live(tableCategories, "c")+" ON c.id = p.category_id").
		GroupBy("c.id", "c.name").
		OrderBy("c.name", q.Asc).
		OrderBy("c.id", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.CategoryFacets: %w", err)
	}
	defer rows.Close()

	list := make([]catalog.CategoryFacet, 0)
	for rows.Next() {
		var c catalog.CategoryFacet
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("catalog.CategoryFacets scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// PriceRanges mínimo y máximo por (código, símbolo) de moneda.
func (r *CatalogReader) PriceRanges(ctx context.Context, f catalog.ProductFilter) ([]catalog.PriceRange, error) {
	b := productBase(f).
		Select("cu.code", "cu.symbol", "MIN(p.price)", "MAX(p.price)").
		Join("INNER JOIN "+live(tableCurrencies, "cu")+" ON cu.id = p.currency_id").
		GroupBy("cu.code", "cu.symbol").
		OrderBy("cu.code", q.Asc).
		OrderBy("cu.symbol", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.PriceRanges: %w", err)
	}
	defer rows.Close()

	list := make([]catalog.PriceRange, 0)
	for rows.Next() {
		var pr catalog.PriceRange
		if err := rows.Scan(&pr.CurrencyCode, &pr.CurrencySymbol, &pr.Min, &pr.Max); err != nil {
			return nil, fmt.Errorf("catalog.PriceRanges scan: %w", err)
		}
		list = append(list, pr)
	}
	return list, rows.Err()
}

// AttributeValueCounts productos distintos por valor, solo asignaciones activas y vivas.
func (r *CatalogReader) AttributeValueCounts(ctx context.Context, f catalog.ProductFilter) ([]catalog.AttributeValueCount, error) {
	b := productBase(f).
		Select("pat.id", "pat.name", "pav.id", "pav.value", "COUNT(DISTINCT p.id)").
		Join("INNER JOIN "+live(tableAttributeAssignments, "pa")+" ON pa.product_id = p.id AND pa.is_active").
		Join("INNER JOIN "+live(tableAttributeValues, "pav")+" ON pav.id = pa.value_id").
		Join("INNER JOIN "+live(tableAttributes, "pat")+" ON pat.id = pav.attribute_id").
		GroupBy("pat.id", "pat.name", "pav.id", "pav.value").
		OrderBy("pat.name", q.Asc).
		OrderBy("pat.id", q.Asc).
		OrderBy("pav.value", q.Asc).
		OrderBy("pav.id", q.Asc)

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.AttributeValueCounts: %w", err)
	}
	defer rows.Close()

	list := make([]catalog.AttributeValueCount, 0)
	for rows.Next() {
		var a catalog.AttributeValueCount
		if err := rows.Scan(&a.AttributeID, &a.AttributeName, &a.ValueID, &a.ValueName, &a.ProductCount); err != nil {
			return nil, fmt.Errorf("catalog.AttributeValueCounts scan: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
