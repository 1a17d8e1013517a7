package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// TransferReportRow fila del reporte de traslados con nombres resueltos.
type TransferReportRow struct {
	RawMaterialName string
	Category        string
	Quantity        decimal.Decimal
	Metric          string
	TransferredFrom string
	DestinationType entity.LocationType
	TransferredTo   string
	TransferredAt   time.Time
	TransferGroupID string
}

// TransferFilter filtros del reporte de traslados. GroupID vacío = todos los
// traslados del destino en la fecha; con valor = solo ese grupo.
type TransferFilter struct {
	SourceStoreroomID int64
	Destination       entity.Location
	Date              time.Time
	GroupID           string
}

// TransferRepository puerto del log de traslados.
type TransferRepository interface {
	Create(ctx context.Context, e *entity.TransferEntry) error

	ListByGroup(ctx context.Context, groupID string) ([]*entity.TransferEntry, error)
	ListByDate(ctx context.Context, date time.Time) ([]TransferReportRow, error)
	Report(ctx context.Context, f TransferFilter) ([]TransferReportRow, error)
	// ReportTotals modo "total": suma las cantidades por materia prima de todas
	// las filas que cumplen el filtro, en lugar de listarlas una a una.
	ReportTotals(ctx context.Context, f TransferFilter) ([]TransferReportRow, error)
}
