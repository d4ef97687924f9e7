package http

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ProductFilterer contrato del caso de uso de filtrado; lo implementa *catalog.FilterProductsUseCase.
type ProductFilterer interface {
	Execute(ctx context.Context, req dto.FilterProductsRequest) (*dto.FilterProductsResponse, error)
}

// CatalogHandler expone el filtrado del catálogo a la tienda (solo activos) y al panel de administración.
type CatalogHandler struct {
	uc  ProductFilterer
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc ProductFilterer, log *logger.Logger) *CatalogHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Filtrar productos del catálogo (tienda)
// @Description  Solo productos activos. attr se repite: attr=<attributeId>:<valueId>,<valueId>
// @Tags         catalog
// @Produce      json
// @Param        page           query  int     false  "Página (>=1)"
// @Param        pageSize       query  int     false  "Tamaño de página (1-100)"
// @Param        languageCode   query  string  false  "Código de idioma (ej. es)"
// @Param        search         query  string  false  "Texto libre"
// @Param        categoryId     query  string  false  "Categoría"
// @Param        currencyId     query  string  false  "Moneda"
// @Param        minPrice       query  string  false  "Precio mínimo (inclusive)"
// @Param        maxPrice       query  string  false  "Precio máximo (inclusive)"
// @Param        attr           query  []string false "Filtro de atributo" collectionFormat(multi)
// @Param        sortBy         query  string  false  "name | price | createdAt"
// @Param        sortDirection  query  string  false  "asc | desc"
// @Param        summary        query  bool    false  "Incluir resumen de facetas"
// @Success      200  {object}  dto.FilterProductsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	req, err := parseFilterQuery(c)
	if err != nil {
		return validationError(c, err)
	}
	active := true
	req.IsActive = &active
	return h.execute(c, req)
}

// Filter godoc
// @Summary      Filtrar productos del catálogo con cuerpo JSON (tienda)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterProductsRequest  true  "Filtro"
// @Success      200   {object}  dto.FilterProductsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/catalog/products/filter [post]
func (h *CatalogHandler) Filter(c *fiber.Ctx) error {
	var req dto.FilterProductsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	active := true
	req.IsActive = &active
	return h.execute(c, req)
}

// AdminList godoc
// @Summary      Filtrar productos del catálogo (administración)
// @Description  Igual que la tienda, con isActive=true|false opcional (ausente = ambos).
// @Tags         admin-catalog
// @Security     Bearer
// @Produce      json
// @Param        isActive  query  bool  false  "Activos / inactivos"
// @Success      200  {object}  dto.FilterProductsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/products [get]
func (h *CatalogHandler) AdminList(c *fiber.Ctx) error {
	req, err := parseFilterQuery(c)
	if err != nil {
		return validationError(c, err)
	}
	if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return validationError(c, errors.New("isActive debe ser true o false"))
		}
		req.IsActive = &v
	}
	return h.execute(c, req)
}

// AdminFilter godoc
// @Summary      Filtrar productos con cuerpo JSON (administración)
// @Tags         admin-catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterProductsRequest  true  "Filtro"
// @Success      200   {object}  dto.FilterProductsResponse
// @Router       /api/admin/catalog/products/filter [post]
func (h *CatalogHandler) AdminFilter(c *fiber.Ctx) error {
	var req dto.FilterProductsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.execute(c, req)
}

func (h *CatalogHandler) execute(c *fiber.Ctx, req dto.FilterProductsRequest) error {
	out, err := h.uc.Execute(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrLanguageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LANGUAGE_NOT_FOUND", Message: "idioma no encontrado o inactivo"})
		}
		// La causa se registra; al cliente solo llega el código.
		h.log.Error().Err(err).Str("path", c.Path()).Msg("catalog: filtrado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: domain.ErrInternal.Error()})
	}
	return c.JSON(out)
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

// parseFilterQuery lee el filtro desde la query string. page/pageSize no numéricos se
// tratan como ausentes (se corrigen después); precios y atributos mal formados son 400.
func parseFilterQuery(c *fiber.Ctx) (dto.FilterProductsRequest, error) {
	req := dto.FilterProductsRequest{
		Page:          c.QueryInt("page", 0),
		PageSize:      c.QueryInt("pageSize", 0),
		LanguageCode:  c.Query("languageCode", c.Query("lang")),
		Search:        c.Query("search"),
		CategoryID:    strings.TrimSpace(c.Query("categoryId")),
		CurrencyID:    strings.TrimSpace(c.Query("currencyId")),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
	req.IncludeSummary = c.QueryBool("summary", false) || c.QueryBool("includeSummary", false)

	var err error
	if req.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return req, err
	}
	if req.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return req, err
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("attr") {
		af, err := parseAttributeParam(string(raw))
		if err != nil {
			return req, err
		}
		req.Attributes = append(req.Attributes, af)
	}
	return req, nil
}

func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.New(key + " debe ser un número decimal")
	}
	return &d, nil
}

// parseAttributeParam "color:red,blue" -> {color, [red blue]}. Sin valores es válido y no filtra.
func parseAttributeParam(raw string) (dto.AttributeFilterRequest, error) {
	attrID, values, ok := strings.Cut(raw, ":")
	attrID = strings.TrimSpace(attrID)
	if !ok || attrID == "" {
		return dto.AttributeFilterRequest{}, errors.New("attr debe tener la forma <attributeId>:<valueId>,<valueId>")
	}
	out := dto.AttributeFilterRequest{AttributeID: attrID}
	for _, v := range strings.Split(values, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out.ValueIDs = append(out.ValueIDs, v)
		}
	}
	return out, nil
}
