package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEntry fila inmutable del historial de compras a proveedores.
type PurchaseEntry struct {
	ID            int64
	VendorID      int64
	InvoiceNumber string
	RawMaterialID int64
	Quantity      decimal.Decimal // cantidad canónica
	Metric        string
	TotalCost     decimal.Decimal
	StoreroomID   int64
	PurchaseDate  time.Time // fecha de negocio
	CreatedAt     time.Time
}

// Vendor proveedor (dato de referencia).
type Vendor struct {
	ID     int64
	Name   string
	Status string // active | inactive
}
