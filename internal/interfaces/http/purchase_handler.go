package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
)

// PurchaseHandler compras a proveedores y sus reportes.
type PurchaseHandler struct {
	uc *ledger.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *ledger.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra
// @Description  Crédito en la bodega, recálculo del costo promedio ponderado
// @Description  y fila de historial, atómico.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "proveedor, factura, bodega, materia, cantidad y costo"
// @Success      201   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.PurchaseDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	entry, err := h.uc.RecordPurchase(c.Context(), ledger.PurchaseInput{
		VendorID:      in.VendorID,
		InvoiceNumber: in.InvoiceNumber,
		StoreroomID:   in.StoreroomID,
		RawMaterialID: in.RawMaterialID,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		TotalCost:     in.TotalCost,
		PurchaseDate:  date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       entry.ID,
		"quantity": entry.Quantity,
		"metric":   entry.Metric,
	})
}

// History godoc
// @Summary      Historial completo de compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/purchases [get]
func (h *PurchaseHandler) History(c *fiber.Ctx) error {
	rows, err := h.uc.History(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "purchases": rows})
}

// ByDate godoc
// @Summary      Compras de una fecha y total gastado
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/purchases/by-date [get]
func (h *PurchaseHandler) ByDate(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	rows, total, err := h.uc.ByDate(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total_spent": total, "purchases": rows})
}

// ByVendor godoc
// @Summary      Compras por proveedor en un rango, agrupadas por factura
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        vendor_id  query  int     false  "id del proveedor; omitir = todos"
// @Param        from       query  string  true   "YYYY-MM-DD"
// @Param        to         query  string  true   "YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/purchases/by-vendor [get]
func (h *PurchaseHandler) ByVendor(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha from inválida"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha to inválida"})
	}
	var vendorID *int64
	if v := c.QueryInt("vendor_id"); v > 0 {
		id := int64(v)
		vendorID = &id
	}
	invoices, totals, err := h.uc.ByVendorAndRange(c.Context(), vendorID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"invoices": invoices, "vendor_totals": totals})
}

// Years godoc
// @Summary      Años con compras registradas
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/purchases/years [get]
func (h *PurchaseHandler) Years(c *fiber.Ctx) error {
	years, err := h.uc.Years(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"years": years})
}
