package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
)

// TransferHandler traslados bodega -> cocina/restaurante y sus reportes.
type TransferHandler struct {
	uc *ledger.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *ledger.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Trasladar materias primas
// @Description  Débito en bodega origen, crédito en destino y log, atómico.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "origen, destino y materias"
// @Success      201   {object}  map[string]interface{}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dest, ok := parseLocation(in.DestinationType, in.DestinationID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destino inválido"})
	}
	items := make([]ledger.TransferItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, ledger.TransferItem{
			RawMaterialID: it.RawMaterialID,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
		})
	}
	entries, err := h.uc.Transfer(c.Context(), ledger.TransferInput{
		SourceStoreroomID: in.SourceStoreroomID,
		Destination:       dest,
		GroupID:           in.TransferGroupID,
		Items:             items,
	})
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.TransferEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.TransferEntryResponse{
			TransferGroupID:   e.TransferGroupID,
			RawMaterialID:     e.RawMaterialID,
			Quantity:          e.Quantity,
			Metric:            e.Metric,
			SourceStoreroomID: e.SourceStoreroomID,
			DestinationType:   string(e.Destination.Type),
			DestinationID:     e.Destination.ID,
			TransferredAt:     e.TransferredAt,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transfer_group_id": entries[0].TransferGroupID,
		"entries":           out,
	})
}

// Report godoc
// @Summary      Reporte de traslados
// @Description  mode=all lista las filas, mode=total suma por materia prima,
// @Description  cualquier otro valor filtra por id de grupo.
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        source_storeroom_id  query  int     true   "bodega origen"
// @Param        destination_type     query  string  true   "kitchen | restaurant"
// @Param        destination_id       query  int     true   "id del destino"
// @Param        date                 query  string  true   "YYYY-MM-DD"
// @Param        mode                 query  string  false  "all | total | <transfer_group_id>"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/transfers/report [get]
func (h *TransferHandler) Report(c *fiber.Ctx) error {
	dest, ok := parseLocation(c.Query("destination_type"), int64(c.QueryInt("destination_id")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destino inválido"})
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	rows, err := h.uc.Report(c.Context(), int64(c.QueryInt("source_storeroom_id")), dest, date, c.Query("mode", ledger.ReportModeAll))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "rows": rows})
}

// History godoc
// @Summary      Todos los traslados de una fecha
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/transfers/history [get]
func (h *TransferHandler) History(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	rows, err := h.uc.History(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "rows": rows})
}

// GetByGroup godoc
// @Summary      Filas crudas de un grupo de traslado
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "transfer_group_id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByGroup(c *fiber.Ctx) error {
	entries, err := h.uc.ListByGroup(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransferEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.TransferEntryResponse{
			TransferGroupID:   e.TransferGroupID,
			RawMaterialID:     e.RawMaterialID,
			Quantity:          e.Quantity,
			Metric:            e.Metric,
			SourceStoreroomID: e.SourceStoreroomID,
			DestinationType:   string(e.Destination.Type),
			DestinationID:     e.Destination.ID,
			TransferredAt:     e.TransferredAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "entries": out})
}
