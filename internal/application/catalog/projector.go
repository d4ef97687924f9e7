package catalog

import (
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// children hijos de la página cargados por lote, indexados por producto.
type children struct {
	localizations map[string]entity.ProductLocalized
	media         map[string][]string
	attributes    map[string][]entity.ProductAttributeAssignment
}

// indexChildren agrupa las filas por producto. Solo guarda la primera localización válida
// para languageID; filas borradas o inactivas se ignoran aunque el lector no debería devolverlas.
func indexChildren(
	languageID string,
	locs []entity.ProductLocalized,
	media []entity.ProductMedia,
	assigns []entity.ProductAttributeAssignment,
) children {
	c := children{
		localizations: make(map[string]entity.ProductLocalized, len(locs)),
		media:         make(map[string][]string),
		attributes:    make(map[string][]entity.ProductAttributeAssignment),
	}
	for _, l := range locs {
		if l.LanguageID != languageID || !l.IsActive || !l.Live() {
			continue
		}
		if _, seen := c.localizations[l.ProductID]; !seen {
			c.localizations[l.ProductID] = l
		}
	}
	for _, m := range media {
		if !m.Live() {
			continue
		}
		c.media[m.ProductID] = append(c.media[m.ProductID], m.URL)
	}
	for _, a := range assigns {
		if !a.IsActive || !a.Live() || a.Value == nil || !a.Value.Live() {
			continue
		}
		c.attributes[a.ProductID] = append(c.attributes[a.ProductID], a)
	}
	return c
}

// projectProducts proyecta la página en el orden recibido. No modifica las entidades.
func projectProducts(products []*entity.Product, languageID string, c children) []dto.ProductDto {
	out := make([]dto.ProductDto, 0, len(products))
	for _, p := range products {
		var loc *entity.ProductLocalized
		if l, ok := c.localizations[p.ID]; ok {
			loc = &l
		}
		out = append(out, projectProduct(p, loc, c.media[p.ID], c.attributes[p.ID], languageID))
	}
	return out
}

// projectProduct arma el DTO de un producto. Nombre y descripción a mostrar: los de loc si existe,
// si no los base. Una localización sin descripción conserva la descripción base.
func projectProduct(
	p *entity.Product,
	loc *entity.ProductLocalized,
	imageURLs []string,
	assigns []entity.ProductAttributeAssignment,
	languageID string,
) dto.ProductDto {
	d := dto.ProductDto{
		ID:              p.ID,
		BaseName:        p.Name,
		BaseDescription: copyString(p.Description),
		Name:            p.Name,
		Description:     copyString(p.Description),
		CategoryID:      p.CategoryID,
		ProviderID:      p.ProviderID,
		CurrencyID:      p.CurrencyID,
		Price:           p.Price,
		Quantity:        p.Quantity,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		ImageURLs:       append(make([]string, 0, len(imageURLs)), imageURLs...),
		Attributes:      make([]dto.AttributeAssignmentDto, 0, len(assigns)),
	}
	if loc != nil {
		d.Localized = true
		d.Name = loc.Name
		if loc.Description != nil {
			d.Description = copyString(loc.Description)
		}
	}
	if p.Category != nil {
		d.CategoryName = p.Category.Name
	}
	if p.Provider != nil {
		d.ProviderName = p.Provider.Name
	}
	if p.Currency != nil {
		d.CurrencyCode = p.Currency.Code
		d.CurrencySymbol = p.Currency.Symbol
		d.CurrencyName = p.Currency.Name
	}
	for _, a := range assigns {
		d.Attributes = append(d.Attributes, projectAssignment(a, languageID))
	}
	return d
}

func projectAssignment(a entity.ProductAttributeAssignment, languageID string) dto.AttributeAssignmentDto {
	out := dto.AttributeAssignmentDto{ValueID: a.ValueID}
	v := a.Value
	if v == nil {
		return out
	}
	out.Value = v.Value
	out.AttributeID = v.AttributeID
	if languageID != "" {
		for _, l := range v.Localizations {
			if l.LanguageID == languageID && l.IsActive && l.Live() {
				s := l.Value
				out.LocalizedValue = &s
				break
			}
		}
	}
	if v.Attribute != nil {
		out.AttributeName = v.Attribute.Name
		if languageID != "" {
			for _, l := range v.Attribute.Localizations {
				if l.LanguageID == languageID && l.IsActive && l.Live() {
					s := l.Name
					out.LocalizedAttributeName = &s
					break
				}
			}
		}
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
