package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.DishRepository = (*DishRepo)(nil)
var _ repository.DishRecipeRepository = (*DishRecipeRepo)(nil)

// DishRepo catálogo de platos sobre PostgreSQL (usable con pool o tx).
type DishRepo struct {
	q Querier
}

// NewDishRepository construye el adaptador de platos. Pasar pool o tx (Querier).
func NewDishRepository(q Querier) *DishRepo {
	return &DishRepo{q: q}
}

func (r *DishRepo) GetByID(ctx context.Context, id int64) (*entity.Dish, error) {
	var d entity.Dish
	err := r.q.QueryRow(ctx,
		`SELECT id, category, name FROM dishes WHERE id = $1`, id,
	).Scan(&d.ID, &d.Category, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish: %w", err)
	}
	return &d, nil
}

func (r *DishRepo) GetByCategoryAndName(ctx context.Context, category, name string) (*entity.Dish, error) {
	var d entity.Dish
	err := r.q.QueryRow(ctx,
		`SELECT id, category, name FROM dishes WHERE category = $1 AND name = $2`,
		category, name,
	).Scan(&d.ID, &d.Category, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish by name: %w", err)
	}
	return &d, nil
}

func (r *DishRepo) List(ctx context.Context) ([]*entity.Dish, error) {
	rows, err := r.q.Query(ctx, `SELECT id, category, name FROM dishes ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Dish
	for rows.Next() {
		var d entity.Dish
		if err := rows.Scan(&d.ID, &d.Category, &d.Name); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DishRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM dishes ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list dish categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan dish category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DishRecipeRepo filas de receta por plato sobre PostgreSQL.
type DishRecipeRepo struct {
	q Querier
}

// NewDishRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewDishRecipeRepository(q Querier) *DishRecipeRepo {
	return &DishRecipeRepo{q: q}
}

// ListByDish devuelve las filas crudas de receta del plato; las unidades
// pueden venir sin normalizar (grams, ml).
func (r *DishRecipeRepo) ListByDish(ctx context.Context, dishID int64) ([]entity.DishRecipeRow, error) {
	query := `
		SELECT dish_id, raw_material_id, quantity, metric
		FROM dish_recipes WHERE dish_id = $1
		ORDER BY raw_material_id`
	rows, err := r.q.Query(ctx, query, dishID)
	if err != nil {
		return nil, fmt.Errorf("list recipe rows: %w", err)
	}
	defer rows.Close()

	var out []entity.DishRecipeRow
	for rows.Next() {
		var row entity.DishRecipeRow
		if err := rows.Scan(&row.DishID, &row.RawMaterialID, &row.Quantity, &row.Metric); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
