package entity

import "github.com/shopspring/decimal"

// Dish plato del menú (dato de referencia).
type Dish struct {
	ID       int64
	Category string
	Name     string
}

// DishRecipeRow fila de receta: cantidad de una materia prima por unidad de plato.
// La unidad puede venir cruda (grams, ml); se normaliza al expandir.
type DishRecipeRow struct {
	DishID        int64
	RawMaterialID int64
	Quantity      decimal.Decimal
	Metric        string
}
