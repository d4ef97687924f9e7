package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog   ProductFilterer
	JWTSecret string
	JWTIssuer string
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)

	// Tienda (público): solo productos activos.
	storefront := api.Group("/catalog")
	storefront.Get("/products", catalogHandler.List)
	storefront.Post("/products/filter", catalogHandler.Filter)

	// Administración (Bearer Token + rol admin): filtro de activo tri-estado.
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole("admin"))
	admin.Get("/catalog/products", catalogHandler.AdminList)
	admin.Post("/catalog/products/filter", catalogHandler.AdminFilter)
}
