package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// StockHandler operaciones directas del libro de stock y reportes de reposición.
type StockHandler struct {
	ledgerUC        *ledger.LedgerUseCase
	replenishmentUC *ledger.ReplenishmentUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledgerUC *ledger.LedgerUseCase, replenishmentUC *ledger.ReplenishmentUseCase) *StockHandler {
	return &StockHandler{ledgerUC: ledgerUC, replenishmentUC: replenishmentUC}
}

// Credit godoc
// @Summary      Acreditar stock en una ubicación
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreditRequest  true  "ubicación, materia prima, cantidad y unidad"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/credit [post]
func (h *StockHandler) Credit(c *fiber.Ctx) error {
	var in dto.CreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, ok := parseLocation(in.LocationType, in.LocationID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	err := h.ledgerUC.Credit(c.Context(), ledger.CreditInput{
		Location:      loc,
		RawMaterialID: in.RawMaterialID,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock acreditado"})
}

// Debit godoc
// @Summary      Debitar stock de una ubicación
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DebitRequest  true  "allow_overdraft habilita saldo negativo explícito"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/debit [post]
func (h *StockHandler) Debit(c *fiber.Ctx) error {
	var in dto.DebitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, ok := parseLocation(in.LocationType, in.LocationID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	err := h.ledgerUC.Debit(c.Context(), ledger.DebitInput{
		Location:       loc,
		RawMaterialID:  in.RawMaterialID,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		AllowOverdraft: in.AllowOverdraft,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock debitado"})
}

// GetBalance godoc
// @Summary      Saldo de una clave del libro de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_type    query  string  true   "storeroom | kitchen | restaurant"
// @Param        location_id      query  int     true   "id de la ubicación"
// @Param        raw_material_id  query  int     true   "id de la materia prima"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/balance [get]
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	loc, ok := parseLocation(c.Query("location_type"), int64(c.QueryInt("location_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	rec, err := h.ledgerUC.GetBalance(c.Context(), loc, int64(c.QueryInt("raw_material_id")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{
		LocationType:       string(rec.Location.Type),
		LocationID:         rec.Location.ID,
		RawMaterialID:      rec.RawMaterialID,
		Metric:             rec.Metric,
		Opening:            rec.Opening,
		Incoming:           rec.Incoming,
		Outgoing:           rec.Outgoing,
		CurrentlyAvailable: rec.CurrentlyAvailable,
		AverageUnitCost:    rec.AverageUnitCost,
		MinimumQuantity:    rec.MinimumQuantity,
		QuantityNeeded:     rec.QuantityNeeded,
	})
}

// Report godoc
// @Summary      Reporte de stock de una ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  true   "storeroom | kitchen | restaurant"
// @Param        location_id    query  int     true   "id de la ubicación"
// @Param        category       query  string  false  "filtro de categoría; vacío o all = todas"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	loc, ok := parseLocation(c.Query("location_type"), int64(c.QueryInt("location_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	items, err := h.replenishmentUC.Report(c.Context(), loc, c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// ReportByType godoc
// @Summary      Reporte de stock de todas las ubicaciones de un tipo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  true  "storeroom | kitchen | restaurant"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/report-by-type [get]
func (h *StockHandler) ReportByType(c *fiber.Ctx) error {
	locType := entity.LocationType(c.Query("location_type"))
	items, err := h.replenishmentUC.ReportByType(c.Context(), locType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// ReplenishmentList godoc
// @Summary      Lista de reposición de una ubicación
// @Description  Materias primas con disponible bajo el mínimo, ordenadas por
// @Description  mayor faltante.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  true   "storeroom | kitchen | restaurant"
// @Param        location_id    query  int     true   "id de la ubicación"
// @Param        category       query  string  false  "filtro de categoría"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/replenishment-list [get]
func (h *StockHandler) ReplenishmentList(c *fiber.Ctx) error {
	loc, ok := parseLocation(c.Query("location_type"), int64(c.QueryInt("location_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
	}
	items, err := h.replenishmentUC.ShortfallList(c.Context(), loc, c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
