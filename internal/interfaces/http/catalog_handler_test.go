package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// fakeFilterer registra la última petición y devuelve resp/err fijos.
type fakeFilterer struct {
	last  *dto.FilterProductsRequest
	resp  *dto.FilterProductsResponse
	err   error
	calls int
}

func (f *fakeFilterer) Execute(_ context.Context, req dto.FilterProductsRequest) (*dto.FilterProductsResponse, error) {
	f.calls++
	f.last = &req
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &dto.FilterProductsResponse{Products: []dto.ProductDto{}, Page: 1, PageSize: 10}, nil
}

func newCatalogApp(f *fakeFilterer, logs io.Writer) *fiber.App {
	app := fiber.New()
	log := logger.Nop()
	if logs != nil {
		log = logger.NewWithWriter(logs, "info")
	}
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog:   f,
		JWTSecret: testJWTSecret,
		JWTIssuer: testIssuer,
		Logger:    log,
	})
	return app
}

func get(t *testing.T, app *fiber.App, target, auth string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestCatalogHandler_List_ParsesQueryAndPinsActive(t *testing.T) {
	f := &fakeFilterer{}
	app := newCatalogApp(f, nil)

	target := "/api/catalog/products?page=2&pageSize=25&languageCode=es&search=red+shirt&categoryId=c1" +
		"&currencyId=usd&minPrice=10.5&maxPrice=40&sortBy=price&sortDirection=asc&summary=true" +
		"&attr=color:red,blue&attr=size:m&isActive=false"
	resp, _ := get(t, app, target, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, f.last)
	req := *f.last
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 25, req.PageSize)
	assert.Equal(t, "es", req.LanguageCode)
	assert.Equal(t, "red shirt", req.Search)
	assert.Equal(t, "c1", req.CategoryID)
	assert.Equal(t, "usd", req.CurrencyID)
	require.NotNil(t, req.MinPrice)
	assert.True(t, decimal.RequireFromString("10.5").Equal(*req.MinPrice))
	require.NotNil(t, req.MaxPrice)
	assert.True(t, decimal.NewFromInt(40).Equal(*req.MaxPrice))
	assert.Equal(t, "price", req.SortBy)
	assert.Equal(t, "asc", req.SortDirection)
	assert.True(t, req.IncludeSummary)
	assert.Equal(t, []dto.AttributeFilterRequest{
		{AttributeID: "color", ValueIDs: []string{"red", "blue"}},
		{AttributeID: "size", ValueIDs: []string{"m"}},
	}, req.Attributes)
	require.NotNil(t, req.IsActive)
	assert.True(t, *req.IsActive, "la tienda ignora isActive y solo muestra activos")
}

func TestCatalogHandler_List_NonNumericPagingIsLeftToClamp(t *testing.T) {
	f := &fakeFilterer{}
	app := newCatalogApp(f, nil)

	resp, _ := get(t, app, "/api/catalog/products?page=abc&pageSize=-4", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, f.last.Page)
	assert.Equal(t, -4, f.last.PageSize)
}

func TestCatalogHandler_List_ValidationErrors(t *testing.T) {
	for _, target := range []string{
		"/api/catalog/products?minPrice=diez",
		"/api/catalog/products?maxPrice=1e",
		"/api/catalog/products?attr=sin-separador",
		"/api/catalog/products?attr=:red",
	} {
		f := &fakeFilterer{}
		app := newCatalogApp(f, nil)

		resp, body := get(t, app, target, "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		assert.Contains(t, string(body), "VALIDATION", target)
		assert.Zero(t, f.calls, target)
	}
}

func TestCatalogHandler_Filter_JSONBody(t *testing.T) {
	f := &fakeFilterer{}
	app := newCatalogApp(f, nil)

	body := `{"page":1,"pageSize":5,"languageCode":"en","isActive":false,"minPrice":"12.30",
		"attributes":[{"attributeId":"color","valueIds":["red"]}],"includeSummary":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/products/filter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, f.last.PageSize)
	assert.True(t, *f.last.IsActive)
	assert.True(t, decimal.RequireFromString("12.3").Equal(*f.last.MinPrice))
	assert.Equal(t, []dto.AttributeFilterRequest{{AttributeID: "color", ValueIDs: []string{"red"}}}, f.last.Attributes)
	assert.True(t, f.last.IncludeSummary)
}

func TestCatalogHandler_Filter_InvalidBody(t *testing.T) {
	f := &fakeFilterer{}
	app := newCatalogApp(f, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/products/filter", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, f.calls)
}

func TestCatalogHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrLanguageNotFound, http.StatusNotFound, "LANGUAGE_NOT_FOUND"},
		{fmt.Errorf("%w: %w", domain.ErrInternal, errors.New("dial tcp 10.0.0.5:5432: connection refused")), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		var logs bytes.Buffer
		app := newCatalogApp(&fakeFilterer{err: tc.err}, &logs)

		resp, body := get(t, app, "/api/catalog/products?languageCode=xx", "")

		assert.Equal(t, tc.status, resp.StatusCode)
		var out dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, tc.code, out.Code)
		assert.NotContains(t, out.Message, "10.0.0.5", "la causa no llega al cliente")
		if tc.status == http.StatusInternalServerError {
			assert.Contains(t, logs.String(), "connection refused", "la causa sí queda en el log")
		}
	}
}

func TestCatalogHandler_Admin_RequiresAdminAndKeepsTriState(t *testing.T) {
	f := &fakeFilterer{}
	app := newCatalogApp(f, nil)

	resp, _ := get(t, app, "/api/admin/catalog/products?isActive=false", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = get(t, app, "/api/admin/catalog/products?isActive=false", tokenForRole(t, "cliente"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, f.calls)

	resp, _ = get(t, app, "/api/admin/catalog/products?isActive=false", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, f.last.IsActive)
	assert.False(t, *f.last.IsActive)

	resp, _ = get(t, app, "/api/admin/catalog/products", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, f.last.IsActive, "sin isActive: activos e inactivos")

	resp, body := get(t, app, "/api/admin/catalog/products?isActive=quizas", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestCatalogHandler_ResponseShape(t *testing.T) {
	f := &fakeFilterer{resp: &dto.FilterProductsResponse{
		Products:   []dto.ProductDto{{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("9.99"), ImageURLs: []string{}, Attributes: []dto.AttributeAssignmentDto{}}},
		TotalCount: 11, Page: 2, PageSize: 10, TotalPages: 2,
	}}
	app := newCatalogApp(f, nil)

	resp, body := get(t, app, "/api/catalog/products?page=2", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.EqualValues(t, 11, out["totalCount"])
	assert.EqualValues(t, 2, out["totalPages"])
	assert.NotContains(t, out, "filterSummary")
	products := out["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "9.99", products[0].(map[string]any)["price"])
}

func TestRequestLogger_WritesAccessLine(t *testing.T) {
	var logs bytes.Buffer
	app := newCatalogApp(&fakeFilterer{}, &logs)

	resp, _ := get(t, app, "/api/catalog/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/catalog/products", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
