package entity

// ProductAttribute definición de atributo a nivel de catálogo (ej. "Color").
type ProductAttribute struct {
	ID   string
	Name string
	SoftDelete

	Localizations []ProductAttributeLocalized
}

// ProductAttributeLocalized nombre del atributo en un idioma.
type ProductAttributeLocalized struct {
	AttributeID string
	LanguageID  string
	Name        string
	IsActive    bool
	SoftDelete
}

// ProductAttributeValue valor fijo de un atributo (ej. "Rojo" para "Color").
type ProductAttributeValue struct {
	ID          string
	AttributeID string
	Value       string
	SoftDelete

	Attribute     *ProductAttribute
	Localizations []ProductAttributeValueLocalized
}

// ProductAttributeValueLocalized valor del atributo en un idioma.
type ProductAttributeValueLocalized struct {
	ValueID    string
	LanguageID string
	Value      string
	IsActive   bool
	SoftDelete
}

// ProductAttributeAssignment vincula un producto con un valor de atributo.
// Sus banderas de activo/borrado son independientes de las del producto.
type ProductAttributeAssignment struct {
	ID        string
	ProductID string
	ValueID   string
	IsActive  bool
	SoftDelete

	Value *ProductAttributeValue
}
