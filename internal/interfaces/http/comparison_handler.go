package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
)

// ComparisonHandler maneja la matriz de comparación de planes.
type ComparisonHandler struct {
	uc *usecase.ComparisonUseCase
}

// NewComparisonHandler construye el handler inyectando el caso de uso.
func NewComparisonHandler(uc *usecase.ComparisonUseCase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// BuildGrid godoc
// @Summary      Proyectar la matriz de comparación para una selección
// @Tags         comparison
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComparisonGridRequest  true  "Selección de planes (orden del llamador, repetidos permitidos)"
// @Success      200   {object}  dto.ComparisonGridResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "Plan fuera del catálogo"
// @Router       /api/comparison/grid [post]
func (h *ComparisonHandler) BuildGrid(c *fiber.Ctx) error {
	var in dto.ComparisonGridRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Selection) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selection es requerido"})
	}
	out, err := h.uc.BuildGrid(in.Selection)
	if err != nil {
		return comparisonError(c, err)
	}
	return c.JSON(out)
}

// ReplaceColumn godoc
// @Summary      Reemplazar una columna de la selección
// @Description  Devuelve la selección nueva (copy-on-write) con su matriz; la selección de entrada no se modifica.
// @Tags         comparison
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplaceColumnRequest  true  "Selección, índice y plan nuevo"
// @Success      200   {object}  dto.ComparisonSelectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "Plan fuera del catálogo"
// @Router       /api/comparison/columns [post]
func (h *ComparisonHandler) ReplaceColumn(c *fiber.Ctx) error {
	var in dto.ReplaceColumnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan es requerido"})
	}
	out, err := h.uc.ReplaceColumn(in.Selection, in.Index, in.Plan)
	if err != nil {
		return comparisonError(c, err)
	}
	return c.JSON(out)
}

// comparisonError mapea los errores de dominio de la comparación a HTTP.
func comparisonError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownPlan):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "UNKNOWN_PLAN",
			Message: "la selección referencia un plan fuera del catálogo",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "índice de columna fuera de rango",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
