package ledger

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición de una ubicación: las
// materias primas cuyo disponible está bajo el umbral mínimo, con la cantidad
// a pedir ya calculada por el libro de stock.
type ReplenishmentUseCase struct {
	stockRepo repository.StockRecordRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(stockRepo repository.StockRecordRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{stockRepo: stockRepo}
}

// Report devuelve el stock de la ubicación (category "all" o vacío = todas).
// Lectura sin bloqueo, tolera snapshots eventualmente consistentes.
func (uc *ReplenishmentUseCase) Report(ctx context.Context, loc entity.Location, category string) ([]repository.StockReportItem, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.Report(ctx, loc, category)
}

// ReportByType stock de todas las ubicaciones de un tipo (bodegas, cocinas o restaurantes).
func (uc *ReplenishmentUseCase) ReportByType(ctx context.Context, locType entity.LocationType) ([]repository.StockReportItem, error) {
	if !locType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ReportByType(ctx, locType)
}

// ShortfallList filtra el reporte a las materias con déficit de reposición,
// ordenadas por mayor faltante primero.
func (uc *ReplenishmentUseCase) ShortfallList(ctx context.Context, loc entity.Location, category string) ([]repository.StockReportItem, error) {
	items, err := uc.Report(ctx, loc, category)
	if err != nil {
		return nil, err
	}
	short := make([]repository.StockReportItem, 0, len(items))
	for _, it := range items {
		if it.QuantityNeeded.IsPositive() {
			short = append(short, it)
		}
	}
	sort.SliceStable(short, func(i, j int) bool {
		return short[i].QuantityNeeded.GreaterThan(short[j].QuantityNeeded)
	})
	return short, nil
}
