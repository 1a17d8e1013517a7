package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
)

func TestAverageUnitCost_PromedioPonderado(t *testing.T) {
	// 10 kg entradas previas a 5.00 por kg; llegan 10 kg por 70.00 en total.
	// Nuevo promedio: (10*5 + 70) / 20 = 6.00
	avg := stock.AverageUnitCost(
		decimal.NewFromInt(10), decimal.NewFromInt(5),
		decimal.NewFromInt(10), decimal.NewFromInt(70),
	)
	assert.True(t, avg.Equal(decimal.NewFromInt(6)), "fue %s", avg)
}

func TestAverageUnitCost_PrimeraCompra(t *testing.T) {
	// Sin entradas previas: el promedio es el costo unitario de la compra.
	avg := stock.AverageUnitCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(4), decimal.NewFromInt(100),
	)
	assert.True(t, avg.Equal(decimal.NewFromInt(25)), "fue %s", avg)
}

func TestAverageUnitCost_SinEntradasDevuelveCero(t *testing.T) {
	avg := stock.AverageUnitCost(decimal.Zero, decimal.NewFromInt(9), decimal.Zero, decimal.Zero)
	assert.True(t, avg.IsZero())
}

func TestQuantityNeeded_DeficitYExceso(t *testing.T) {
	// Por debajo del mínimo: falta la diferencia.
	needed := stock.QuantityNeeded(decimal.NewFromInt(10), decimal.NewFromInt(4))
	assert.True(t, needed.Equal(decimal.NewFromInt(6)), "fue %s", needed)

	// Por encima del mínimo: nunca negativo.
	needed = stock.QuantityNeeded(decimal.NewFromInt(10), decimal.NewFromInt(25))
	assert.True(t, needed.IsZero())

	// Sin umbral configurado.
	needed = stock.QuantityNeeded(decimal.Zero, decimal.NewFromInt(3))
	assert.True(t, needed.IsZero())
}
