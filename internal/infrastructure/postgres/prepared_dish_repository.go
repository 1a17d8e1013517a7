package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.PreparedDishRepository = (*PreparedDishRepo)(nil)

// PreparedDishRepo lotes de platos preparados y sus traslados sobre
// PostgreSQL (usable con pool o tx).
type PreparedDishRepo struct {
	q Querier
}

// NewPreparedDishRepository construye el adaptador de platos preparados. Pasar pool o tx (Querier).
func NewPreparedDishRepository(q Querier) *PreparedDishRepo {
	return &PreparedDishRepo{q: q}
}

// Create da de alta el lote del día para (plato, cocina).
func (r *PreparedDishRepo) Create(ctx context.Context, d *entity.KitchenPreparedDish) error {
	query := `
		INSERT INTO kitchen_prepared_dishes
			(dish_id, kitchen_id, prepared_quantity, available_quantity, prepared_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		d.DishID, d.KitchenID, d.PreparedQuantity, d.AvailableQuantity, d.PreparedOn,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert prepared dish: %w", err)
	}
	return nil
}

func (r *PreparedDishRepo) get(ctx context.Context, dishID, kitchenID int64, preparedOn time.Time, forUpdate bool) (*entity.KitchenPreparedDish, error) {
	query := `
		SELECT id, dish_id, kitchen_id, prepared_quantity, available_quantity, prepared_on
		FROM kitchen_prepared_dishes
		WHERE dish_id = $1 AND kitchen_id = $2 AND prepared_on = $3::date`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var d entity.KitchenPreparedDish
	err := r.q.QueryRow(ctx, query, dishID, kitchenID, preparedOn).Scan(
		&d.ID, &d.DishID, &d.KitchenID, &d.PreparedQuantity, &d.AvailableQuantity, &d.PreparedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prepared dish: %w", err)
	}
	return &d, nil
}

// Get devuelve el lote, nil si no hay preparación ese día.
func (r *PreparedDishRepo) Get(ctx context.Context, dishID, kitchenID int64, preparedOn time.Time) (*entity.KitchenPreparedDish, error) {
	return r.get(ctx, dishID, kitchenID, preparedOn, false)
}

// GetForUpdate bloquea el lote para descontar disponibilidad. Solo en transacción.
func (r *PreparedDishRepo) GetForUpdate(ctx context.Context, dishID, kitchenID int64, preparedOn time.Time) (*entity.KitchenPreparedDish, error) {
	return r.get(ctx, dishID, kitchenID, preparedOn, true)
}

// UpdateAvailable persiste las cantidades del lote ya mutado.
func (r *PreparedDishRepo) UpdateAvailable(ctx context.Context, d *entity.KitchenPreparedDish) error {
	_, err := r.q.Exec(ctx, `
		UPDATE kitchen_prepared_dishes
		SET prepared_quantity = $2, available_quantity = $3
		WHERE id = $1`,
		d.ID, d.PreparedQuantity, d.AvailableQuantity,
	)
	if err != nil {
		return fmt.Errorf("update prepared dish: %w", err)
	}
	return nil
}

// ListByDate lotes preparados de una fecha en todas las cocinas.
func (r *PreparedDishRepo) ListByDate(ctx context.Context, preparedOn time.Time) ([]*entity.KitchenPreparedDish, error) {
	query := `
		SELECT id, dish_id, kitchen_id, prepared_quantity, available_quantity, prepared_on
		FROM kitchen_prepared_dishes
		WHERE prepared_on = $1::date
		ORDER BY kitchen_id, dish_id`
	rows, err := r.q.Query(ctx, query, preparedOn)
	if err != nil {
		return nil, fmt.Errorf("list prepared dishes: %w", err)
	}
	defer rows.Close()

	var out []*entity.KitchenPreparedDish
	for rows.Next() {
		var d entity.KitchenPreparedDish
		if err := rows.Scan(&d.ID, &d.DishID, &d.KitchenID, &d.PreparedQuantity, &d.AvailableQuantity, &d.PreparedOn); err != nil {
			return nil, fmt.Errorf("scan prepared dish: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// CreateTransfer registra el traslado de platos preparados a un restaurante.
func (r *PreparedDishRepo) CreateTransfer(ctx context.Context, t *entity.PreparedDishTransfer) error {
	query := `
		INSERT INTO prepared_dish_transfers
			(dish_id, source_kitchen_id, destination_restaurant_id, quantity, transferred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.DishID, t.SourceKitchenID, t.DestinationRestaurantID, t.Quantity, t.TransferredAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert prepared dish transfer: %w", err)
	}
	return nil
}

// ListTransfersByDate traslados de platos preparados de una fecha.
func (r *PreparedDishRepo) ListTransfersByDate(ctx context.Context, date time.Time) ([]*entity.PreparedDishTransfer, error) {
	query := `
		SELECT id, dish_id, source_kitchen_id, destination_restaurant_id, quantity, transferred_at
		FROM prepared_dish_transfers
		WHERE transferred_at::date = $1::date
		ORDER BY transferred_at`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list prepared dish transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.PreparedDishTransfer
	for rows.Next() {
		var t entity.PreparedDishTransfer
		if err := rows.Scan(&t.ID, &t.DishID, &t.SourceKitchenID, &t.DestinationRestaurantID, &t.Quantity, &t.TransferredAt); err != nil {
			return nil, fmt.Errorf("scan prepared dish transfer: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
