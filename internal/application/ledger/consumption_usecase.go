package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/pkg/clock"
)

// ConsumptionUseCase registra los eventos de venta y preparación: expande la
// receta del plato, debita cada materia prima del stock de la ubicación y
// acumula el consumo diario por clave (materia, fecha, ubicación).
type ConsumptionUseCase struct {
	txRunner        TxRunner
	expander        *RecipeExpander
	consumptionRepo repository.ConsumptionRepository // lecturas sin bloqueo
	dishRepo        repository.DishRepository
	clk             clock.Clock
}

// NewConsumptionUseCase construye el caso de uso de ventas y preparaciones.
func NewConsumptionUseCase(
	txRunner TxRunner,
	expander *RecipeExpander,
	consumptionRepo repository.ConsumptionRepository,
	dishRepo repository.DishRepository,
	clk clock.Clock,
) *ConsumptionUseCase {
	return &ConsumptionUseCase{
		txRunner:        txRunner,
		expander:        expander,
		consumptionRepo: consumptionRepo,
		dishRepo:        dishRepo,
		clk:             clk,
	}
}

// EventResult resultado de una venta o preparación: cantidades canónicas
// debitadas por materia prima y materias que no pudieron aplicarse por falta
// de registro de stock en la ubicación.
type EventResult struct {
	Debited map[int64]decimal.Decimal
	Missing []int64
}

// RecordSale registra la venta de un plato en un restaurante: expande la
// receta, debita cada materia del stock del restaurante y acumula el consumo
// del día. Las materias sin registro de stock en el restaurante se reportan
// en un PartialApplicabilityError; las demás quedan confirmadas.
func (uc *ConsumptionUseCase) RecordSale(ctx context.Context, restaurantID, dishID int64, soldQty decimal.Decimal, date time.Time) (*EventResult, error) {
	loc := entity.Location{Type: entity.LocationRestaurant, ID: restaurantID}
	return uc.applyEvent(ctx, loc, dishID, soldQty, date, nil)
}

// RecordPreparation registra la preparación de un plato en una cocina:
// mismas reglas de débito y consumo que la venta, más el alta o acumulación
// del lote de platos preparados del día.
func (uc *ConsumptionUseCase) RecordPreparation(ctx context.Context, kitchenID, dishID int64, preparedQty decimal.Decimal, date time.Time) (*EventResult, error) {
	loc := entity.Location{Type: entity.LocationKitchen, ID: kitchenID}
	return uc.applyEvent(ctx, loc, dishID, preparedQty, date, func(r TxRepos, businessDate time.Time) error {
		lot, err := r.Prepared.GetForUpdate(ctx, dishID, kitchenID, businessDate)
		if err != nil {
			return err
		}
		if lot == nil {
			return r.Prepared.Create(ctx, &entity.KitchenPreparedDish{
				DishID:            dishID,
				KitchenID:         kitchenID,
				PreparedQuantity:  preparedQty,
				AvailableQuantity: preparedQty,
				PreparedOn:        businessDate,
			})
		}
		lot.PreparedQuantity = lot.PreparedQuantity.Add(preparedQty)
		lot.AvailableQuantity = lot.AvailableQuantity.Add(preparedQty)
		return r.Prepared.UpdateAvailable(ctx, lot)
	})
}

// applyEvent ejecuta la expansión y las mutaciones del evento en una sola
// transacción. Política de fallo parcial: una materia sin registro de stock
// se salta y se reporta (el resto del evento se confirma); stock insuficiente
// aborta el evento completo con rollback.
func (uc *ConsumptionUseCase) applyEvent(
	ctx context.Context,
	loc entity.Location,
	dishID int64,
	qty decimal.Decimal,
	date time.Time,
	extra func(r TxRepos, businessDate time.Time) error,
) (*EventResult, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	dish, err := uc.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, domain.ErrUnknownDish
	}
	required, err := uc.expander.Expand(ctx, dishID, qty)
	if err != nil {
		return nil, err
	}

	// Orden determinista de bloqueo de claves.
	ids := make([]int64, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	businessDate := date
	if businessDate.IsZero() {
		businessDate = uc.clk.Today()
	} else {
		businessDate = clock.DateOnly(businessDate)
	}

	result := &EventResult{Debited: make(map[int64]decimal.Decimal, len(ids))}
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		for _, materialID := range ids {
			need := required[materialID]

			rec, err := r.Stock.GetForUpdate(ctx, loc, materialID)
			if err != nil {
				return err
			}
			if rec.Metric == "" {
				// Sin registro de stock en la ubicación: se reporta, no se debita.
				result.Missing = append(result.Missing, materialID)
				continue
			}
			if err := rec.Debit(need, false); err != nil {
				return fmt.Errorf("materia prima %d: %w", materialID, err)
			}
			if err := r.Stock.Upsert(ctx, rec); err != nil {
				return err
			}
			if err := r.Consumption.UpsertAdd(ctx, &entity.ConsumptionEntry{
				RawMaterialID: materialID,
				Date:          businessDate,
				Location:      loc,
				Quantity:      need,
				Metric:        rec.Metric,
			}); err != nil {
				return err
			}
			result.Debited[materialID] = need
		}
		if extra != nil {
			return extra(r, businessDate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(result.Missing) > 0 {
		return result, &domain.PartialApplicabilityError{Missing: result.Missing}
	}
	return result, nil
}

// PreparedTransferInput traslado de platos preparados cocina -> restaurante.
type PreparedTransferInput struct {
	DishID       int64
	KitchenID    int64
	RestaurantID int64
	Quantity     decimal.Decimal
	Date         time.Time
}

// TransferPrepared descuenta disponibilidad del lote preparado y registra el
// traslado al restaurante, atómicamente.
func (uc *ConsumptionUseCase) TransferPrepared(ctx context.Context, in PreparedTransferInput) error {
	if in.DishID <= 0 || in.KitchenID <= 0 || in.RestaurantID <= 0 || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = uc.clk.Today()
	} else {
		date = clock.DateOnly(date)
	}

	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		lot, err := r.Prepared.GetForUpdate(ctx, in.DishID, in.KitchenID, date)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if lot.AvailableQuantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		lot.AvailableQuantity = lot.AvailableQuantity.Sub(in.Quantity)
		if err := r.Prepared.UpdateAvailable(ctx, lot); err != nil {
			return err
		}
		return r.Prepared.CreateTransfer(ctx, &entity.PreparedDishTransfer{
			DishID:                  in.DishID,
			SourceKitchenID:         in.KitchenID,
			DestinationRestaurantID: in.RestaurantID,
			Quantity:                in.Quantity,
			TransferredAt:           uc.clk.Now(),
		})
	})
}

// DailyReport consumo del día de una ubicación: trasladado vs consumido vs restante.
func (uc *ConsumptionUseCase) DailyReport(ctx context.Context, loc entity.Location, date time.Time) ([]repository.ConsumptionReportItem, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.consumptionRepo.DailyReport(ctx, loc, clock.DateOnly(date))
}
