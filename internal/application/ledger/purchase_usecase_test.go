package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

func newPurchaseUC(db *memDB) *ledger.PurchaseUseCase {
	return ledger.NewPurchaseUseCase(db, &memPurchaseRepo{s: db.state}, &memMaterialRepo{db: db}, &memVendorRepo{db: db}, testClock)
}

func seedVendor(db *memDB, id int64, name string) {
	db.state.vendors[id] = entity.Vendor{ID: id, Name: name, Status: "active"}
}

func TestCompra_PrimeraFijaCostoUnitario(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	seedVendor(db, 10, "Distribuidora Sur")
	uc := newPurchaseUC(db)

	entry, err := uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID:      10,
		InvoiceNumber: "F-001",
		StoreroomID:   1,
		RawMaterialID: 1,
		Quantity:      decimal.NewFromInt(10),
		Unit:          "kg",
		TotalCost:     decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, testClock.Today(), entry.PurchaseDate, "sin fecha explícita se usa la fecha de negocio")

	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	rec := getStock(db, bodega, 1)
	assert.True(t, rec.CurrentlyAvailable.Equal(decimal.NewFromInt(10)))
	assert.True(t, rec.AverageUnitCost.Equal(decimal.NewFromInt(5)),
		"primera compra: costo promedio = 50 / 10")
}

func TestCompra_PromedioPonderadoSobreEntradas(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	seedVendor(db, 10, "Distribuidora Sur")
	uc := newPurchaseUC(db)

	comprar := func(qty, cost int64) {
		_, err := uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
			VendorID:      10,
			InvoiceNumber: "F-002",
			StoreroomID:   1,
			RawMaterialID: 1,
			Quantity:      decimal.NewFromInt(qty),
			Unit:          "kg",
			TotalCost:     decimal.NewFromInt(cost),
		})
		require.NoError(t, err)
	}
	comprar(10, 50) // 5.0 por kg
	comprar(10, 70) // 7.0 por kg

	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	rec := getStock(db, bodega, 1)
	assert.True(t, rec.AverageUnitCost.Equal(decimal.NewFromInt(6)),
		"(10*5 + 70) / (10+10) = 6, se obtuvo %s", rec.AverageUnitCost)
	assert.True(t, rec.Incoming.Equal(decimal.NewFromInt(20)))
	require.Len(t, db.state.purchases, 2, "cada compra deja su fila de historial")
}

func TestCompra_ElPromedioIgnoraLasSalidas(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	seedVendor(db, 10, "Distribuidora Sur")
	bodega := entity.Location{Type: entity.LocationStoreroom, ID: 1}
	uc := newPurchaseUC(db)
	ledgerUC := newLedgerUC(db)

	_, err := uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID: 10, InvoiceNumber: "F-003", StoreroomID: 1, RawMaterialID: 1,
		Quantity: decimal.NewFromInt(10), Unit: "kg", TotalCost: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	// Consumir la mitad no cambia la ponderación: se pondera sobre entradas acumuladas.
	require.NoError(t, ledgerUC.Debit(context.Background(), ledger.DebitInput{
		Location: bodega, RawMaterialID: 1, Quantity: decimal.NewFromInt(5), Unit: "kg",
	}))
	_, err = uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID: 10, InvoiceNumber: "F-004", StoreroomID: 1, RawMaterialID: 1,
		Quantity: decimal.NewFromInt(10), Unit: "kg", TotalCost: decimal.NewFromInt(70),
	})
	require.NoError(t, err)

	rec := getStock(db, bodega, 1)
	assert.True(t, rec.AverageUnitCost.Equal(decimal.NewFromInt(6)),
		"(10*5 + 70) / 20 = 6 aunque el disponible fuera 5")
	assert.True(t, rec.CurrentlyAvailable.Equal(decimal.NewFromInt(15)))
}

func TestCompra_NormalizaUnidadYFecha(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 2, "leche", "liter")
	seedVendor(db, 10, "Lacteos SA")
	uc := newPurchaseUC(db)

	fecha := time.Date(2026, 3, 10, 18, 45, 0, 0, time.UTC)
	entry, err := uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID:      10,
		InvoiceNumber: "F-010",
		StoreroomID:   1,
		RawMaterialID: 2,
		Quantity:      decimal.NewFromInt(2000),
		Unit:          "ml",
		TotalCost:     decimal.NewFromInt(8),
		PurchaseDate:  fecha,
	})
	require.NoError(t, err)
	assert.True(t, entry.Quantity.Equal(decimal.NewFromInt(2)), "2000 ml se registran como 2 litros")
	assert.Equal(t, "liter", entry.Metric)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), entry.PurchaseDate,
		"la fecha de compra se trunca a día")
}

func TestCompra_ValidaProveedorYFactura(t *testing.T) {
	db := newMemDB()
	seedMaterial(db, 1, "harina", "kg")
	uc := newPurchaseUC(db)

	_, err := uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID: 99, InvoiceNumber: "F-001", StoreroomID: 1, RawMaterialID: 1,
		Quantity: decimal.NewFromInt(1), Unit: "kg", TotalCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")

	seedVendor(db, 10, "Distribuidora Sur")
	_, err = uc.RecordPurchase(context.Background(), ledger.PurchaseInput{
		VendorID: 10, InvoiceNumber: "", StoreroomID: 1, RawMaterialID: 1,
		Quantity: decimal.NewFromInt(1), Unit: "kg", TotalCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "factura vacía")
}
