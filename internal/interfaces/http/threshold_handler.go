package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
)

// ThresholdHandler umbrales mínimos de stock por ubicación.
type ThresholdHandler struct {
	uc *ledger.ThresholdUseCase
}

// NewThresholdHandler construye el handler.
func NewThresholdHandler(uc *ledger.ThresholdUseCase) *ThresholdHandler {
	return &ThresholdHandler{uc: uc}
}

// Update godoc
// @Summary      Fijar umbrales mínimos
// @Description  Upsert de mínimos por materia prima; el cambio cascadea al
// @Description  registro de stock (minimum_quantity y quantity_needed).
// @Tags         thresholds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThresholdRequest  true  "ubicación y mínimos por materia"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/thresholds [put]
func (h *ThresholdHandler) Update(c *fiber.Ctx) error {
	var in dto.ThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, ok := parseLocation(in.LocationType, in.LocationID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	if err := h.uc.UpdateMinimums(c.Context(), loc, in.Minimums); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "umbrales actualizados"})
}

// List godoc
// @Summary      Materias primas con su umbral en una ubicación
// @Tags         thresholds
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  true  "storeroom | kitchen | restaurant"
// @Param        location_id    query  int     true  "id de la ubicación"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/thresholds [get]
func (h *ThresholdHandler) List(c *fiber.Ctx) error {
	loc, ok := parseLocation(c.Query("location_type"), int64(c.QueryInt("location_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	rows, err := h.uc.ListForLocation(c.Context(), loc)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "thresholds": rows})
}
