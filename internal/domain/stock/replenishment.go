package stock

import "github.com/shopspring/decimal"

// QuantityNeeded calcula la cantidad a reponer (servicio de dominio, sin estado):
// max(0, mínimo configurado - disponible actual). Se recalcula tras cada
// mutación de saldo y tras cada cambio de umbral mínimo.
func QuantityNeeded(minimum, available decimal.Decimal) decimal.Decimal {
	needed := minimum.Sub(available)
	if needed.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return Round(needed)
}
