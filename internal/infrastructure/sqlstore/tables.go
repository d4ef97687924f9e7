package sqlstore

const (
	tableLanguages              = "languages"
	tableCurrencies             = "currencies"
	tableCategories             = "categories"
	tableProviders              = "providers"
	tableProducts               = "products"
	tableProductLocalizations   = "product_localizations"
	tableProductMedia           = "product_media"
	tableAttributes             = "product_attributes"
	tableAttributeLocalizations = "product_attribute_localizations"
	tableAttributeValues        = "product_attribute_values"
	tableValueLocalizations     = "product_attribute_value_localizations"
	tableAttributeAssignments   = "product_attribute_assignments"
)

// live expone una tabla como tabla derivada sin filas borradas lógicamente.
// Toda lectura de este paquete entra por aquí; no hay FROM/JOIN directos a las tablas.
func live(table, alias string) string {
	return "(SELECT * FROM " + table + " WHERE NOT is_deleted) AS " + alias
}
