package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// PreparedDishRepository lotes de platos preparados y sus traslados a restaurantes.
type PreparedDishRepository interface {
	Create(ctx context.Context, d *entity.KitchenPreparedDish) error
	// Get devuelve el lote de un plato preparado en una cocina y fecha, nil si no hay.
	Get(ctx context.Context, dishID, kitchenID int64, preparedOn time.Time) (*entity.KitchenPreparedDish, error)
	// GetForUpdate bloquea el lote para descontar disponibilidad. Solo en transacción.
	GetForUpdate(ctx context.Context, dishID, kitchenID int64, preparedOn time.Time) (*entity.KitchenPreparedDish, error)
	UpdateAvailable(ctx context.Context, d *entity.KitchenPreparedDish) error
	ListByDate(ctx context.Context, preparedOn time.Time) ([]*entity.KitchenPreparedDish, error)

	CreateTransfer(ctx context.Context, t *entity.PreparedDishTransfer) error
	ListTransfersByDate(ctx context.Context, date time.Time) ([]*entity.PreparedDishTransfer, error)
}
