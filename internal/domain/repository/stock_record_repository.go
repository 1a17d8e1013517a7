package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// StockReportItem fila del reporte de stock por ubicación (join con raw_materials).
type StockReportItem struct {
	LocationName       string
	RawMaterialID      int64
	RawMaterialName    string
	Category           string
	Metric             string
	Opening            decimal.Decimal
	Incoming           decimal.Decimal
	Outgoing           decimal.Decimal
	CurrentlyAvailable decimal.Decimal
	MinimumRequired    decimal.Decimal
	QuantityNeeded     decimal.Decimal
}

// StockRecordRepository puerto de persistencia del libro de stock.
// Get/GetForUpdate devuelven un registro en cero cuando la clave no existe
// (creación perezosa); Upsert materializa el registro.
type StockRecordRepository interface {
	Get(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Solo dentro de una
	// transacción. Una clave inexistente también queda bloqueada: la
	// implementación la materializa antes de devolver el registro en cero,
	// de modo que dos transacciones que estrenan la clave se serializan
	// igual que sobre una fila existente.
	GetForUpdate(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error)
	Upsert(ctx context.Context, record *entity.StockRecord) error

	// Report lista el stock de una ubicación con datos de material y reposición.
	// category vacío o "all" = sin filtro de categoría.
	Report(ctx context.Context, loc entity.Location, category string) ([]StockReportItem, error)
	// ReportByType lista el stock de todas las ubicaciones de un tipo.
	ReportByType(ctx context.Context, locType entity.LocationType) ([]StockReportItem, error)
}
