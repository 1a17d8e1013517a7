package ledger

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
	"github.com/jhoicas/restaurante-stock-api/pkg/clock"
)

// ThresholdUseCase administra los umbrales mínimos de stock por ubicación.
// Cada cambio de umbral cascadea al StockRecord correspondiente
// (minimum_quantity y quantity_needed) en la misma transacción.
type ThresholdUseCase struct {
	txRunner      TxRunner
	thresholdRepo repository.ThresholdRepository // lecturas sin bloqueo
	clk           clock.Clock
}

// NewThresholdUseCase construye el caso de uso de umbrales.
func NewThresholdUseCase(txRunner TxRunner, thresholdRepo repository.ThresholdRepository, clk clock.Clock) *ThresholdUseCase {
	return &ThresholdUseCase{txRunner: txRunner, thresholdRepo: thresholdRepo, clk: clk}
}

// UpdateMinimums inserta o actualiza los umbrales de la ubicación y propaga
// cada cambio al registro de stock si ya está materializado. Los mínimos se
// truncan a >= 0 y 5 decimales.
func (uc *ThresholdUseCase) UpdateMinimums(ctx context.Context, loc entity.Location, minimums map[int64]decimal.Decimal) error {
	if !loc.Valid() || len(minimums) == 0 {
		return domain.ErrInvalidInput
	}

	ids := make([]int64, 0, len(minimums))
	for id := range minimums {
		if id <= 0 {
			return domain.ErrInvalidInput
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	now := uc.clk.Now()
	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		for _, materialID := range ids {
			min := stock.Round(minimums[materialID])
			if min.LessThan(decimal.Zero) {
				min = decimal.Zero
			}
			if err := r.Thresholds.Upsert(ctx, &entity.MinimumStockThreshold{
				Location:      loc,
				RawMaterialID: materialID,
				MinQuantity:   min,
				UpdatedAt:     now,
			}); err != nil {
				return err
			}

			rec, err := r.Stock.GetForUpdate(ctx, loc, materialID)
			if err != nil {
				return err
			}
			if rec.Metric == "" {
				// Registro aún no materializado: tomará el umbral al crearse.
				continue
			}
			rec.SetMinimum(min)
			if err := r.Stock.Upsert(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListForLocation lista las materias activas con el umbral de la ubicación.
func (uc *ThresholdUseCase) ListForLocation(ctx context.Context, loc entity.Location) ([]repository.MaterialThresholdRow, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.thresholdRepo.ListForLocation(ctx, loc)
}
