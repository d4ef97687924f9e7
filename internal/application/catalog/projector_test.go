package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func sampleProduct() *entity.Product {
	desc := "Lámpara de escritorio"
	return &entity.Product{
		ID:          "p1",
		Name:        "Desk Lamp",
		Description: &desc,
		CategoryID:  "c1",
		ProviderID:  "pv1",
		CurrencyID:  "usd",
		Price:       decimal.RequireFromString("19.90"),
		Quantity:    4,
		IsActive:    true,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Category:    &entity.Category{ID: "c1", Name: "Lamps"},
		Provider:    &entity.Provider{ID: "pv1", Name: "Acme"},
		Currency:    &entity.Currency{ID: "usd", Code: "USD", Symbol: "$", Name: "US Dollar"},
	}
}

func TestProjectProduct_FallsBackToBaseText(t *testing.T) {
	p := sampleProduct()

	d := projectProduct(p, nil, nil, nil, "lang-es")

	assert.Equal(t, "Desk Lamp", d.Name)
	require.NotNil(t, d.Description)
	assert.Equal(t, "Lámpara de escritorio", *d.Description)
	assert.False(t, d.Localized)
	assert.Equal(t, "Lamps", d.CategoryName)
	assert.Equal(t, "Acme", d.ProviderName)
	assert.Equal(t, "USD", d.CurrencyCode)
	assert.NotNil(t, d.ImageURLs)
	assert.NotNil(t, d.Attributes)
}

func TestProjectProduct_LocalizedWithoutDescriptionKeepsBase(t *testing.T) {
	p := sampleProduct()
	loc := &entity.ProductLocalized{ProductID: "p1", LanguageID: "lang-es", Name: "Lámpara", IsActive: true}

	d := projectProduct(p, loc, nil, nil, "lang-es")

	assert.True(t, d.Localized)
	assert.Equal(t, "Lámpara", d.Name)
	assert.Equal(t, "Desk Lamp", d.BaseName)
	require.NotNil(t, d.Description)
	assert.Equal(t, *p.Description, *d.Description)
}

func TestProjectProduct_DoesNotMutateOrAlias(t *testing.T) {
	p := sampleProduct()
	before := *p
	beforeDesc := *p.Description
	urls := []string{"a.jpg"}

	d := projectProduct(p, nil, urls, nil, "")
	*d.Description = "cambiado"
	d.ImageURLs[0] = "b.jpg"

	assert.Equal(t, before, *p)
	assert.Equal(t, beforeDesc, *p.Description)
	assert.Equal(t, "a.jpg", urls[0])
}

func TestIndexChildren_SkipsDeletedAndInactive(t *testing.T) {
	now := time.Now()
	locs := []entity.ProductLocalized{
		{ProductID: "p1", LanguageID: "lang-es", Name: "borrada", IsActive: true, SoftDelete: entity.SoftDelete{IsDeleted: true, DeletedAt: &now}},
		{ProductID: "p1", LanguageID: "lang-es", Name: "inactiva", IsActive: false},
		{ProductID: "p1", LanguageID: "lang-en", Name: "otro idioma", IsActive: true},
		{ProductID: "p1", LanguageID: "lang-es", Name: "válida", IsActive: true},
	}
	media := []entity.ProductMedia{
		{ProductID: "p1", URL: "viva.jpg"},
		{ProductID: "p1", URL: "borrada.jpg", SoftDelete: entity.SoftDelete{IsDeleted: true}},
	}
	value := &entity.ProductAttributeValue{ID: "red", AttributeID: "color", Value: "Red"}
	assigns := []entity.ProductAttributeAssignment{
		{ProductID: "p1", ValueID: "red", IsActive: true, Value: value},
		{ProductID: "p1", ValueID: "red", IsActive: false, Value: value},
		{ProductID: "p1", ValueID: "red", IsActive: true, Value: nil},
	}

	c := indexChildren("lang-es", locs, media, assigns)

	assert.Equal(t, "válida", c.localizations["p1"].Name)
	assert.Equal(t, []string{"viva.jpg"}, c.media["p1"])
	assert.Len(t, c.attributes["p1"], 1)
}

func TestProjectAssignment_Localized(t *testing.T) {
	attr := &entity.ProductAttribute{
		ID: "color", Name: "Color",
		Localizations: []entity.ProductAttributeLocalized{
			{AttributeID: "color", LanguageID: "lang-es", Name: "Color ES", IsActive: false},
			{AttributeID: "color", LanguageID: "lang-es", Name: "Tono", IsActive: true},
		},
	}
	a := entity.ProductAttributeAssignment{
		ProductID: "p1", ValueID: "red", IsActive: true,
		Value: &entity.ProductAttributeValue{
			ID: "red", AttributeID: "color", Value: "Red", Attribute: attr,
			Localizations: []entity.ProductAttributeValueLocalized{
				{ValueID: "red", LanguageID: "lang-en", Value: "Red EN", IsActive: true},
			},
		},
	}

	d := projectAssignment(a, "lang-es")

	assert.Equal(t, "Color", d.AttributeName)
	require.NotNil(t, d.LocalizedAttributeName)
	assert.Equal(t, "Tono", *d.LocalizedAttributeName)
	assert.Equal(t, "Red", d.Value)
	assert.Nil(t, d.LocalizedValue)

	base := projectAssignment(a, "")
	assert.Nil(t, base.LocalizedAttributeName)
}

type stubLanguages struct {
	byCode map[string]*entity.Language
	asked  []string
}

func (s *stubLanguages) FindActiveByCode(_ context.Context, code string) (*entity.Language, error) {
	s.asked = append(s.asked, code)
	return s.byCode[code], nil
}

func TestResolveLanguage(t *testing.T) {
	repo := &stubLanguages{byCode: map[string]*entity.Language{
		"es":    {ID: "lang-es", Code: "es", IsActive: true},
		"pt-BR": {ID: "lang-pt", Code: "pt-BR", IsActive: true},
	}}
	ctx := context.Background()

	lang, err := ResolveLanguage(ctx, repo, "")
	assert.NoError(t, err)
	assert.Nil(t, lang)
	assert.Empty(t, repo.asked, "sin código no hay consulta")

	lang, err = ResolveLanguage(ctx, repo, " ES ")
	require.NoError(t, err)
	assert.Equal(t, "lang-es", lang.ID)

	lang, err = ResolveLanguage(ctx, repo, "pt_br")
	require.NoError(t, err)
	assert.Equal(t, "lang-pt", lang.ID)

	_, err = ResolveLanguage(ctx, repo, "en")
	assert.ErrorIs(t, err, domain.ErrLanguageNotFound)

	_, err = ResolveLanguage(ctx, repo, "??")
	assert.ErrorIs(t, err, domain.ErrLanguageNotFound)
}
