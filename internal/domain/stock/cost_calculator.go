package stock

import "github.com/shopspring/decimal"

// AverageUnitCost implementa la lógica de costo promedio ponderado sobre el
// total de entradas (servicio de dominio).
// NuevoCosto = ((EntradasPrevias * CostoPrevio) + CostoTotalCompra) / (EntradasPrevias + CantEntrada)
func AverageUnitCost(prevIncoming, prevAvg, addedQty, totalCost decimal.Decimal) decimal.Decimal {
	sum := prevIncoming.Add(addedQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := prevIncoming.Mul(prevAvg).Add(totalCost)
	return num.Div(sum)
}
