package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

func kitchenRecord() *entity.StockRecord {
	return entity.NewStockRecord(entity.Location{Type: entity.LocationKitchen, ID: 2}, 7, "kg")
}

func TestStockRecord_CreditoActualizaDisponible(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(10))

	assert.True(t, r.Incoming.Equal(decimal.NewFromInt(10)))
	assert.True(t, r.CurrentlyAvailable.Equal(decimal.NewFromInt(10)))
	require.NoError(t, r.CheckInvariant())
}

func TestStockRecord_DebitoDescuentaYMantienInvariante(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(10))

	require.NoError(t, r.Debit(decimal.NewFromInt(4), false))
	assert.True(t, r.Outgoing.Equal(decimal.NewFromInt(4)))
	assert.True(t, r.CurrentlyAvailable.Equal(decimal.NewFromInt(6)))
	require.NoError(t, r.CheckInvariant())
}

func TestStockRecord_DebitoInsuficienteRechazado(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(3))

	err := r.Debit(decimal.NewFromInt(5), false)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El registro no debe haber cambiado tras el rechazo.
	assert.True(t, r.CurrentlyAvailable.Equal(decimal.NewFromInt(3)))
	assert.True(t, r.Outgoing.IsZero())
}

func TestStockRecord_SobregiroExplicitoPermitido(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(3))

	require.NoError(t, r.Debit(decimal.NewFromInt(5), true))
	assert.True(t, r.CurrentlyAvailable.Equal(decimal.NewFromInt(-2)))
}

// Un crédito y un débito por la misma cantidad devuelven el disponible a su
// valor previo (conservación al revertir un traslado).
func TestStockRecord_ConservacionCreditoDebito(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(20))
	before := r.CurrentlyAvailable

	r.Credit(decimal.NewFromFloat(7.5))
	require.NoError(t, r.Debit(decimal.NewFromFloat(7.5), false))

	assert.True(t, r.CurrentlyAvailable.Equal(before), "esperado %s, fue %s", before, r.CurrentlyAvailable)
	require.NoError(t, r.CheckInvariant())
}

func TestStockRecord_QuantityNeededTrasCadaMutacion(t *testing.T) {
	r := kitchenRecord()
	r.SetMinimum(decimal.NewFromInt(10))
	assert.True(t, r.QuantityNeeded.Equal(decimal.NewFromInt(10)))

	r.Credit(decimal.NewFromInt(6))
	assert.True(t, r.QuantityNeeded.Equal(decimal.NewFromInt(4)))

	r.Credit(decimal.NewFromInt(10))
	assert.True(t, r.QuantityNeeded.IsZero())

	require.NoError(t, r.Debit(decimal.NewFromInt(9), false))
	assert.True(t, r.QuantityNeeded.Equal(decimal.NewFromInt(3)))
}

func TestStockRecord_MinimoNegativoSeTruncaACero(t *testing.T) {
	r := kitchenRecord()
	r.SetMinimum(decimal.NewFromInt(-5))
	assert.True(t, r.MinimumQuantity.IsZero())
	assert.True(t, r.QuantityNeeded.IsZero())
}

func TestStockRecord_InvarianteDetectaCorrupcion(t *testing.T) {
	r := kitchenRecord()
	r.Credit(decimal.NewFromInt(5))
	r.CurrentlyAvailable = decimal.NewFromInt(99)

	require.ErrorIs(t, r.CheckInvariant(), domain.ErrBalanceInvariant)
}
