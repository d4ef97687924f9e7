package catalog

import "strings"

// SortKey campo de ordenamiento permitido.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByCreatedAt SortKey = "createdAt"
)

// SortDirection dirección del ordenamiento.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort combina clave y dirección. El valor cero no es válido; usar DefaultSort.
type Sort struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort más recientes primero.
func DefaultSort() Sort {
	return Sort{Key: SortByCreatedAt, Direction: Descending}
}

// ParseSortKey acepta "name", "price", "createdAt" (sin distinguir mayúsculas).
// Cualquier otro valor cae en CreatedAt.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName
	case "price":
		return SortByPrice
	default:
		return SortByCreatedAt
	}
}

// ParseSortDirection acepta "asc"/"ascending"; lo demás es descendente.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	default:
		return Descending
	}
}

// ParseSort construye el orden a partir de los textos de la petición.
func ParseSort(key, direction string) Sort {
	return Sort{Key: ParseSortKey(key), Direction: ParseSortDirection(direction)}
}
