package repository

import (
	"context"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// DishRepository platos del menú (dato de referencia, editado fuera del núcleo).
type DishRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Dish, error)
	GetByCategoryAndName(ctx context.Context, category, name string) (*entity.Dish, error)
	List(ctx context.Context) ([]*entity.Dish, error)
	Categories(ctx context.Context) ([]string, error)
}

// DishRecipeRepository filas de receta por plato.
type DishRecipeRepository interface {
	// ListByDish devuelve las filas de receta del plato (puede haber varias
	// para la misma materia prima, en unidades distintas).
	ListByDish(ctx context.Context, dishID int64) ([]entity.DishRecipeRow, error)
}
