package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
	"github.com/jhoicas/restaurante-stock-api/pkg/clock"
)

// PurchaseUseCase registra compras a proveedores: crédito en la bodega
// destino, recálculo del costo promedio ponderado y fila inmutable de
// historial, todo en una transacción.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository // lecturas sin bloqueo
	materialRepo repository.RawMaterialRepository
	vendorRepo   repository.VendorRepository
	clk          clock.Clock
}

// NewPurchaseUseCase construye el caso de uso de compras.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	materialRepo repository.RawMaterialRepository,
	vendorRepo repository.VendorRepository,
	clk clock.Clock,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		materialRepo: materialRepo,
		vendorRepo:   vendorRepo,
		clk:          clk,
	}
}

// PurchaseInput entrada para registrar una compra. PurchaseDate en cero usa
// la fecha de negocio actual.
type PurchaseInput struct {
	VendorID      int64
	InvoiceNumber string
	StoreroomID   int64
	RawMaterialID int64
	Quantity      decimal.Decimal
	Unit          string
	TotalCost     decimal.Decimal
	PurchaseDate  time.Time
}

// RecordPurchase acredita la bodega, actualiza el costo promedio como
// promedio ponderado sobre el total de entradas y agrega la fila de historial.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, in PurchaseInput) (*entity.PurchaseEntry, error) {
	if in.VendorID <= 0 || in.StoreroomID <= 0 || in.RawMaterialID <= 0 ||
		in.InvoiceNumber == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.TotalCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, in.RawMaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.IsDeleted {
		return nil, domain.ErrUnknownMaterial
	}
	vendor, err := uc.vendorRepo.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	qty, metric := stock.Normalize(in.Quantity, in.Unit)
	date := in.PurchaseDate
	if date.IsZero() {
		date = uc.clk.Today()
	} else {
		date = clock.DateOnly(date)
	}
	storeroom := entity.Location{Type: entity.LocationStoreroom, ID: in.StoreroomID}

	entry := &entity.PurchaseEntry{
		VendorID:      in.VendorID,
		InvoiceNumber: in.InvoiceNumber,
		RawMaterialID: in.RawMaterialID,
		Quantity:      qty,
		Metric:        metric,
		TotalCost:     in.TotalCost,
		StoreroomID:   in.StoreroomID,
		PurchaseDate:  date,
		CreatedAt:     uc.clk.Now(),
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		rec, err := lockRecord(ctx, r, storeroom, in.RawMaterialID, material, metric)
		if err != nil {
			return err
		}
		// El promedio se pondera con las entradas previas al crédito.
		rec.AverageUnitCost = stock.AverageUnitCost(rec.Incoming, rec.AverageUnitCost, qty, in.TotalCost)
		rec.Credit(qty)
		if err := r.Stock.Upsert(ctx, rec); err != nil {
			return err
		}
		return r.Purchases.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// History lista todo el historial de compras.
func (uc *PurchaseUseCase) History(ctx context.Context) ([]repository.PurchaseReportRow, error) {
	return uc.purchaseRepo.ListAll(ctx)
}

// ByDate devuelve las compras de una fecha y el total gastado ese día.
func (uc *PurchaseUseCase) ByDate(ctx context.Context, date time.Time) ([]repository.PurchaseReportRow, decimal.Decimal, error) {
	return uc.purchaseRepo.ListByDate(ctx, clock.DateOnly(date))
}

// ByVendorAndRange resume las compras por factura; vendorID nil = todos los proveedores.
func (uc *PurchaseUseCase) ByVendorAndRange(ctx context.Context, vendorID *int64, from, to time.Time) ([]repository.InvoiceSummaryRow, []repository.VendorTotalRow, error) {
	invoices, err := uc.purchaseRepo.ListByVendorAndRange(ctx, vendorID, clock.DateOnly(from), clock.DateOnly(to))
	if err != nil {
		return nil, nil, err
	}
	totals, err := uc.purchaseRepo.VendorTotals(ctx, vendorID, clock.DateOnly(from), clock.DateOnly(to))
	if err != nil {
		return nil, nil, err
	}
	return invoices, totals, nil
}

// Years devuelve los años con compras registradas (para filtros de reporte).
func (uc *PurchaseUseCase) Years(ctx context.Context) ([]int, error) {
	return uc.purchaseRepo.Years(ctx)
}
