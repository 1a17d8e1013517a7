package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

func newThresholdUC(db *memDB) *ledger.ThresholdUseCase {
	return ledger.NewThresholdUseCase(db, &memThresholdRepo{s: db.state}, testClock)
}

func TestUmbral_CascadeaAlRegistroMaterializado(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	seedStock(db, bodega, 1, "kg", decimal.NewFromInt(3))
	uc := newThresholdUC(db)

	err := uc.UpdateMinimums(context.Background(), bodega, map[int64]decimal.Decimal{
		1: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	rec := getStock(db, bodega, 1)
	assert.True(t, rec.MinimumQuantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, rec.QuantityNeeded.Equal(decimal.NewFromInt(7)),
		"quantity_needed = max(0, 10 - 3)")

	th := db.state.thresholds[stockKey{bodega.Type, bodega.ID, 1}]
	assert.True(t, th.MinQuantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, testClock.Now(), th.UpdatedAt)
}

func TestUmbral_SinRegistroSoloGuardaElUmbral(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 4, "tomate", "kg")
	cocina := entity.Location{Type: entity.LocationKitchen, ID: 2}
	uc := newThresholdUC(db)

	err := uc.UpdateMinimums(context.Background(), cocina, map[int64]decimal.Decimal{
		4: decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	assert.Empty(t, db.state.records[stockKey{cocina.Type, cocina.ID, 4}].Metric,
		"el umbral no materializa el registro de stock: a lo sumo deja el placeholder sin métrica")

	// El registro toma el umbral cuando se materializa por el primer crédito.
	ledgerUC := newLedgerUC(db)
	require.NoError(t, ledgerUC.Credit(context.Background(), ledger.CreditInput{
		Location: cocina, RawMaterialID: 4, Quantity: decimal.NewFromInt(2), Unit: "kg",
	}))
	rec := getStock(db, cocina, 4)
	assert.True(t, rec.MinimumQuantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, rec.QuantityNeeded.Equal(decimal.NewFromInt(4)))
}

func TestUmbral_MinimoNegativoSeTruncaACero(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	seedStock(db, bodega, 1, "kg", decimal.NewFromInt(3))
	uc := newThresholdUC(db)

	err := uc.UpdateMinimums(context.Background(), bodega, map[int64]decimal.Decimal{
		1: decimal.NewFromInt(-5),
	})
	require.NoError(t, err)

	rec := getStock(db, bodega, 1)
	assert.True(t, rec.MinimumQuantity.IsZero())
	assert.True(t, rec.QuantityNeeded.IsZero())
}

func TestUmbral_EntradaInvalida(t *testing.T) {
	db := newMemDB()
	uc := newThresholdUC(db)
	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}

	err := uc.UpdateMinimums(context.Background(), bodega, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.UpdateMinimums(context.Background(), bodega, map[int64]decimal.Decimal{0: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReposicion_ListaSoloFaltantesOrdenados(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	seedMaterial(db, 2, "azucar", "kg")
	seedMaterial(db, 3, "sal", "kg")
	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	for id, qty := range map[int64]int64{1: 3, 2: 8, 3: 50} {
		seedStock(db, bodega, id, "kg", decimal.NewFromInt(qty))
	}
	require.NoError(t, newThresholdUC(db).UpdateMinimums(context.Background(), bodega, map[int64]decimal.Decimal{
		1: decimal.NewFromInt(10), // faltan 7
		2: decimal.NewFromInt(10), // faltan 2
		3: decimal.NewFromInt(10), // sobra
	}))

	uc := ledger.NewReplenishmentUseCase(db.stockRepo())
	short, err := uc.ShortfallList(context.Background(), bodega, "")
	require.NoError(t, err)
	require.Len(t, short, 2, "solo las materias con déficit")
	assert.Equal(t, int64(1), short[0].RawMaterialID, "mayor faltante primero")
	assert.True(t, short[0].QuantityNeeded.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, int64(2), short[1].RawMaterialID)
}
