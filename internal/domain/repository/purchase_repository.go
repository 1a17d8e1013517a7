package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// PurchaseReportRow fila de historial de compras con nombres resueltos.
type PurchaseReportRow struct {
	ID            int64
	VendorID      int64
	VendorName    string
	InvoiceNumber string
	MaterialName  string
	Quantity      decimal.Decimal
	Metric        string
	TotalCost     decimal.Decimal
	StoreroomName string
	PurchaseDate  time.Time
	CreatedAt     time.Time
}

// VendorTotalRow total comprado a un proveedor en un rango.
type VendorTotalRow struct {
	VendorName string
	TotalCost  decimal.Decimal
}

// InvoiceSummaryRow resumen de compra agrupado por factura.
type InvoiceSummaryRow struct {
	InvoiceNumber string
	VendorID      int64
	VendorName    string
	StoreroomID   int64
	StoreroomName string
	TotalCost     decimal.Decimal
	ItemCount     int64
	PurchaseDate  time.Time
}

// PurchaseRepository puerto del historial de compras.
type PurchaseRepository interface {
	Create(ctx context.Context, e *entity.PurchaseEntry) error

	ListAll(ctx context.Context) ([]PurchaseReportRow, error)
	// ListByDate devuelve las compras del día y el total gastado en esa fecha.
	ListByDate(ctx context.Context, date time.Time) ([]PurchaseReportRow, decimal.Decimal, error)
	// ListByVendorAndRange filtra por proveedor en un rango. vendorID nil = todos
	// los proveedores (el filtro se omite, siempre parametrizado).
	ListByVendorAndRange(ctx context.Context, vendorID *int64, from, to time.Time) ([]InvoiceSummaryRow, error)
	VendorTotals(ctx context.Context, vendorID *int64, from, to time.Time) ([]VendorTotalRow, error)
	Years(ctx context.Context) ([]int, error)
}

// VendorRepository catálogo de proveedores.
type VendorRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Vendor, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Vendor, error)
}
