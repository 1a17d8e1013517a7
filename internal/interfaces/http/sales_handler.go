package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain"
)

// SalesHandler ventas, preparaciones y consumo diario.
type SalesHandler struct {
	uc *ledger.ConsumptionUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *ledger.ConsumptionUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// eventResponse responde el resultado del evento. Un fallo parcial (materias
// sin registro de stock en la ubicación) devuelve 207 con la lista de
// faltantes; la parte aplicada ya quedó confirmada.
func eventResponse(c *fiber.Ctx, result *ledger.EventResult, err error) error {
	if err != nil {
		if pe, ok := domain.IsPartialApplicability(err); ok && result != nil {
			return c.Status(fiber.StatusMultiStatus).JSON(dto.EventResultResponse{
				Debited: result.Debited,
				Missing: pe.Missing,
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EventResultResponse{Debited: result.Debited})
}

// RecordSale godoc
// @Summary      Registrar venta de un plato
// @Description  Expande la receta, debita el stock del restaurante y acumula
// @Description  el consumo del día por materia prima.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "restaurante, plato, cantidad, fecha opcional"
// @Success      201   {object}  dto.EventResultResponse
// @Success      207   {object}  dto.EventResultResponse  "aplicación parcial: missing enumera materias sin registro"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	result, err := h.uc.RecordSale(c.Context(), in.RestaurantID, in.DishID, in.Quantity, date)
	return eventResponse(c, result, err)
}

// RecordPreparation godoc
// @Summary      Registrar preparación de un plato en cocina
// @Description  Mismas reglas de débito que la venta, más el alta o acumulación
// @Description  del lote de platos preparados del día.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreparationRequest  true  "cocina, plato, cantidad, fecha opcional"
// @Success      201   {object}  dto.EventResultResponse
// @Success      207   {object}  dto.EventResultResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/preparations [post]
func (h *SalesHandler) RecordPreparation(c *fiber.Ctx) error {
	var in dto.PreparationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	result, err := h.uc.RecordPreparation(c.Context(), in.KitchenID, in.DishID, in.Quantity, date)
	return eventResponse(c, result, err)
}

// TransferPrepared godoc
// @Summary      Trasladar platos preparados a un restaurante
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreparedTransferRequest  true  "plato, cocina, restaurante, cantidad"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/preparations/transfer [post]
func (h *SalesHandler) TransferPrepared(c *fiber.Ctx) error {
	var in dto.PreparedTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	err = h.uc.TransferPrepared(c.Context(), ledger.PreparedTransferInput{
		DishID:       in.DishID,
		KitchenID:    in.KitchenID,
		RestaurantID: in.RestaurantID,
		Quantity:     in.Quantity,
		Date:         date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "traslado registrado"})
}

// DailyReport godoc
// @Summary      Consumo diario de una ubicación
// @Description  Por materia prima: cuánto llegó por traslados, cuánto se
// @Description  consumió y cuánto queda.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  true  "kitchen | restaurant"
// @Param        location_id    query  int     true  "id de la ubicación"
// @Param        date           query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/consumption/report [get]
func (h *SalesHandler) DailyReport(c *fiber.Ctx) error {
	loc, ok := parseLocation(c.Query("location_type"), int64(c.QueryInt("location_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	items, err := h.uc.DailyReport(c.Context(), loc, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
