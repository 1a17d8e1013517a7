package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditRequest body para POST /api/stock/credit.
type CreditRequest struct {
	LocationType  string          `json:"location_type"`
	LocationID    int64           `json:"location_id"`
	RawMaterialID int64           `json:"raw_material_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

// DebitRequest body para POST /api/stock/debit. AllowOverdraft habilita
// sobregiro explícito para la operación.
type DebitRequest struct {
	LocationType   string          `json:"location_type"`
	LocationID     int64           `json:"location_id"`
	RawMaterialID  int64           `json:"raw_material_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	AllowOverdraft bool            `json:"allow_overdraft,omitempty"`
}

// BalanceResponse saldo actual de una clave del libro de stock.
type BalanceResponse struct {
	LocationType       string          `json:"location_type"`
	LocationID         int64           `json:"location_id"`
	RawMaterialID      int64           `json:"raw_material_id"`
	Metric             string          `json:"metric"`
	Opening            decimal.Decimal `json:"opening"`
	Incoming           decimal.Decimal `json:"incoming"`
	Outgoing           decimal.Decimal `json:"outgoing"`
	CurrentlyAvailable decimal.Decimal `json:"currently_available"`
	AverageUnitCost    decimal.Decimal `json:"average_unit_cost"`
	MinimumQuantity    decimal.Decimal `json:"minimum_quantity"`
	QuantityNeeded     decimal.Decimal `json:"quantity_needed"`
}

// TransferItemRequest una materia dentro de un traslado.
type TransferItemRequest struct {
	RawMaterialID int64           `json:"raw_material_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	SourceStoreroomID int64                 `json:"source_storeroom_id"`
	DestinationType   string                `json:"destination_type"`
	DestinationID     int64                 `json:"destination_id"`
	TransferGroupID   string                `json:"transfer_group_id,omitempty"`
	Items             []TransferItemRequest `json:"items"`
}

// TransferEntryResponse fila de log de traslado.
type TransferEntryResponse struct {
	TransferGroupID   string          `json:"transfer_group_id"`
	RawMaterialID     int64           `json:"raw_material_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Metric            string          `json:"metric"`
	SourceStoreroomID int64           `json:"source_storeroom_id"`
	DestinationType   string          `json:"destination_type"`
	DestinationID     int64           `json:"destination_id"`
	TransferredAt     time.Time       `json:"transferred_at"`
}

// PurchaseRequest body para POST /api/purchases. PurchaseDate "YYYY-MM-DD",
// vacío = fecha de negocio actual.
type PurchaseRequest struct {
	VendorID      int64           `json:"vendor_id"`
	InvoiceNumber string          `json:"invoice_number"`
	StoreroomID   int64           `json:"storeroom_id"`
	RawMaterialID int64           `json:"raw_material_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	PurchaseDate  string          `json:"purchase_date,omitempty"`
}

// SaleRequest body para POST /api/sales.
type SaleRequest struct {
	RestaurantID int64           `json:"restaurant_id"`
	DishID       int64           `json:"dish_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date,omitempty"` // YYYY-MM-DD
}

// PreparationRequest body para POST /api/preparations.
type PreparationRequest struct {
	KitchenID int64           `json:"kitchen_id"`
	DishID    int64           `json:"dish_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      string          `json:"date,omitempty"` // YYYY-MM-DD
}

// PreparedTransferRequest body para POST /api/preparations/transfer.
type PreparedTransferRequest struct {
	DishID       int64           `json:"dish_id"`
	KitchenID    int64           `json:"kitchen_id"`
	RestaurantID int64           `json:"restaurant_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date,omitempty"`
}

// EventResultResponse resultado de una venta o preparación. Missing enumera
// materias primas sin registro de stock en la ubicación (fallo parcial).
type EventResultResponse struct {
	Debited map[int64]decimal.Decimal `json:"debited"`
	Missing []int64                   `json:"missing,omitempty"`
}

// ThresholdRequest body para PUT /api/thresholds: mínimos por materia prima.
type ThresholdRequest struct {
	LocationType string                    `json:"location_type"`
	LocationID   int64                     `json:"location_id"`
	Minimums     map[int64]decimal.Decimal `json:"minimums"`
}

// RawMaterialRequest alta de materia prima.
type RawMaterialRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Metric   string `json:"metric"`
}
