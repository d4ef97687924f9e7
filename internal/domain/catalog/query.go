package catalog

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query petición de filtrado ya normalizada.
type Query struct {
	Filter         ProductFilter
	Sort           Sort
	Page           int
	PageSize       int
	LanguageCode   string
	IncludeSummary bool
}

// NormalizePage corrige páginas menores a 1.
func NormalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// NormalizePageSize fuera de [1, MaxPageSize] vuelve al tamaño por defecto.
func NormalizePageSize(size int) int {
	if size < 1 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// Normalize aplica las correcciones silenciosas de la petición. No devuelve error:
// ningún valor de entrada se rechaza en esta etapa.
func (q Query) Normalize() Query {
	q.Page = NormalizePage(q.Page)
	q.PageSize = NormalizePageSize(q.PageSize)
	q.Filter.Search = NormalizeSearch(q.Filter.Search)
	q.Filter.Attributes = NormalizeAttributeFilters(q.Filter.Attributes)
	if q.Sort.Key == "" {
		q.Sort.Key = SortByCreatedAt
	}
	if q.Sort.Direction == "" {
		q.Sort.Direction = Descending
	}
	return q
}

// Offset filas a saltar para la página actual.
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// TotalPages ceil(total/pageSize); cero cuando no hay resultados.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
