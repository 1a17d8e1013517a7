package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// ConsumptionReportItem fila del reporte diario de consumo de una ubicación:
// cuánto llegó por traslados, cuánto se consumió y cuánto queda.
type ConsumptionReportItem struct {
	LocationName        string
	RawMaterialName     string
	Metric              string
	TransferredQuantity decimal.Decimal
	ConsumedQuantity    decimal.Decimal
	RemainingQuantity   decimal.Decimal
}

// ConsumptionRepository puerto del registro de consumos.
type ConsumptionRepository interface {
	// UpsertAdd acumula la cantidad sobre el total existente de la clave
	// (materia, fecha, ubicación); inserta si no existe. Idempotente por clave
	// en el sentido contable: nunca sobrescribe, siempre suma.
	UpsertAdd(ctx context.Context, e *entity.ConsumptionEntry) error

	Get(ctx context.Context, rawMaterialID int64, date time.Time, loc entity.Location) (*entity.ConsumptionEntry, error)
	DailyReport(ctx context.Context, loc entity.Location, date time.Time) ([]ConsumptionReportItem, error)
}
