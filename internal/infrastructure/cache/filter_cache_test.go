package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

func TestKey_Deterministic(t *testing.T) {
	min := decimal.RequireFromString("10")
	q := catalog.Query{
		Filter: catalog.ProductFilter{CategoryID: "c1", MinPrice: &min},
		Page:   2, PageSize: 10,
	}.Normalize()

	k1 := Key(q)
	k2 := Key(q)

	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "catalog:filter:"))
	assert.Len(t, strings.TrimPrefix(k1, "catalog:filter:"), 32)
}

func TestKey_DistinguishesQueries(t *testing.T) {
	base := catalog.Query{Page: 1, PageSize: 10}.Normalize()

	page2 := base
	page2.Page = 2
	lang := base
	lang.LanguageCode = "es"
	summary := base
	summary.IncludeSummary = true
	active := true
	onlyActive := base
	onlyActive.Filter.IsActive = &active

	keys := map[string]struct{}{}
	for _, q := range []catalog.Query{base, page2, lang, summary, onlyActive} {
		keys[Key(q)] = struct{}{}
	}
	assert.Len(t, keys, 5)
}

func TestNewFilterCache_DefaultTTL(t *testing.T) {
	c := NewFilterCache(nil, 0)
	assert.Equal(t, DefaultTTL, c.ttl)

	c = NewFilterCache(nil, 30*time.Second)
	assert.Equal(t, 30*time.Second, c.ttl)
}
