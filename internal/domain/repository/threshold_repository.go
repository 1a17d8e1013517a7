package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// MaterialThresholdRow materia prima con su umbral configurado (0 si no tiene).
type MaterialThresholdRow struct {
	RawMaterialID int64
	Name          string
	Category      string
	Metric        string
	MinQuantity   decimal.Decimal
}

// ThresholdRepository puerto de umbrales mínimos de stock.
type ThresholdRepository interface {
	Upsert(ctx context.Context, t *entity.MinimumStockThreshold) error
	Get(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.MinimumStockThreshold, error)
	// ListForLocation lista todas las materias primas activas con el umbral de
	// la ubicación (LEFT JOIN, 0 cuando no hay umbral).
	ListForLocation(ctx context.Context, loc entity.Location) ([]MaterialThresholdRow, error)
}
