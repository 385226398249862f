package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC    *usecase.PricingUseCase
	ComparisonUC *usecase.ComparisonUseCase
	CompanyUC    *usecase.CompanyUseCase
}

// Router registra las rutas de la API. Todas las operaciones son consultas
// puras sobre el snapshot del directorio y el catálogo: no hay mutaciones.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de planes
	pricingHandler := NewPricingHandler(deps.PricingUC)
	api.Get("/plans", pricingHandler.ListPlans)

	// Directorio de cuentas (solo lectura; las altas/bajas son del proveedor externo)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Vista de precios por cuenta
	pricing := api.Group("/pricing")
	pricing.Get("/view", pricingHandler.GetView)

	// Matriz de comparación (selección en el body: es del llamador, no del servidor)
	cmp := api.Group("/comparison")
	comparisonHandler := NewComparisonHandler(deps.ComparisonUC)
	cmp.Post("/grid", comparisonHandler.BuildGrid)
	cmp.Post("/columns", comparisonHandler.ReplaceColumn)

	// Diagnóstico para operadores
	diagnostics := api.Group("/diagnostics")
	diagnostics.Get("/scenarios", pricingHandler.GetScenarios)
}
