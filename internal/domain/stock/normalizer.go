package stock

import "github.com/shopspring/decimal"

// Unidades canónicas de la operación. Toda aritmética entre cantidades del
// mismo material se hace en estas unidades; mezclar unidades crudas entre
// registros produce subconteos silenciosos, así que la normalización ocurre
// en el borde de ingestión, nunca en lectura.
const (
	MetricKg    = "kg"
	MetricLiter = "liter"
)

var thousand = decimal.NewFromInt(1000)

// Normalize convierte un par (cantidad, unidad) a su unidad canónica:
// grams -> cantidad/1000 kg; ml -> cantidad/1000 liter; cualquier otra
// unidad pasa sin cambios. Idempotente sobre unidades ya canónicas.
func Normalize(quantity decimal.Decimal, unit string) (decimal.Decimal, string) {
	switch unit {
	case "grams":
		return quantity.Div(thousand), MetricKg
	case "ml":
		return quantity.Div(thousand), MetricLiter
	}
	return quantity, unit
}

// Round redondea a los 5 decimales con los que trabaja el libro de stock.
func Round(q decimal.Decimal) decimal.Decimal {
	return q.Round(5)
}
