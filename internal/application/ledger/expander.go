package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
)

// RecipeExpander convierte (plato, cantidad producida/vendida) en el mapa de
// materias primas requeridas en cantidad canónica.
type RecipeExpander struct {
	recipeRepo repository.DishRecipeRepository
}

// NewRecipeExpander construye el expansor de recetas.
func NewRecipeExpander(recipeRepo repository.DishRecipeRepository) *RecipeExpander {
	return &RecipeExpander{recipeRepo: recipeRepo}
}

// Expand multiplica cada fila de receta por la cantidad producida, normaliza
// la unidad y acumula por materia prima (una materia repetida en varias filas
// de la receta se suma en una sola entrada). Devuelve ErrUnknownDish si el
// plato no tiene filas de receta.
func (e *RecipeExpander) Expand(ctx context.Context, dishID int64, producedQty decimal.Decimal) (map[int64]decimal.Decimal, error) {
	if dishID <= 0 || !producedQty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := e.recipeRepo.ListByDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUnknownDish
	}

	required := make(map[int64]decimal.Decimal, len(rows))
	for _, row := range rows {
		qty, _ := stock.Normalize(row.Quantity.Mul(producedQty), row.Metric)
		required[row.RawMaterialID] = required[row.RawMaterialID].Add(qty)
	}
	for id, qty := range required {
		required[id] = stock.Round(qty)
	}
	return required, nil
}
