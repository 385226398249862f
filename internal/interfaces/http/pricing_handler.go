package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
)

// PricingHandler maneja las peticiones HTTP de la vista de precios.
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler inyectando el caso de uso.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// ListPlans godoc
// @Summary      Listar el catálogo de planes
// @Tags         plans
// @Produce      json
// @Success      200  {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *PricingHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.uc.ListPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetView godoc
// @Summary      Vista de precios para una cuenta
// @Description  Resuelve plan actual, flags recomendado, descuentos advisor y escenario. Si la cuenta no existe devuelve la vista por defecto (tier Free) con selected=false.
// @Tags         pricing
// @Produce      json
// @Param        company  query  string  true  "Nombre de la cuenta"
// @Success      200  {object}  dto.AccountViewResponse
// @Failure      422  {object}  dto.ErrorResponse  "Plan almacenado fuera del catálogo"
// @Router       /api/pricing/view [get]
func (h *PricingHandler) GetView(c *fiber.Ctx) error {
	company := c.Query("company")
	out, err := h.uc.ResolveAccountView(company)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPlan) {
			// Integridad de datos directorio↔catálogo: se expone, no se suaviza.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "UNKNOWN_PLAN",
				Message: "la cuenta referencia un plan fuera del catálogo",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetScenarios godoc
// @Summary      Reporte de escenarios del directorio (diagnóstico)
// @Tags         diagnostics
// @Produce      json
// @Success      200  {array}  dto.ScenarioReportResponse
// @Router       /api/diagnostics/scenarios [get]
func (h *PricingHandler) GetScenarios(c *fiber.Ctx) error {
	out, err := h.uc.ScenarioReport()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
