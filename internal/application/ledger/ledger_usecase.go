package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
)

// LedgerUseCase operaciones directas sobre el libro de stock: crédito, débito
// y consulta de saldo. Toda mutación corre dentro de una transacción con
// bloqueo de fila (SELECT FOR UPDATE); dos débitos concurrentes sobre la misma
// clave nunca leen el mismo disponible.
type LedgerUseCase struct {
	txRunner     TxRunner
	stockRepo    repository.StockRecordRepository // lecturas sin bloqueo (pool)
	materialRepo repository.RawMaterialRepository
}

// NewLedgerUseCase construye el caso de uso del libro de stock.
func NewLedgerUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRecordRepository,
	materialRepo repository.RawMaterialRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, stockRepo: stockRepo, materialRepo: materialRepo}
}

// CreditInput entrada para acreditar stock en una ubicación.
type CreditInput struct {
	Location      entity.Location
	RawMaterialID int64
	Quantity      decimal.Decimal
	Unit          string
}

// DebitInput entrada para debitar stock. AllowOverdraft habilita saldo
// negativo de forma explícita; por defecto el débito que dejaría el saldo
// bajo cero se rechaza con ErrInsufficientStock.
type DebitInput struct {
	Location       entity.Location
	RawMaterialID  int64
	Quantity       decimal.Decimal
	Unit           string
	AllowOverdraft bool
}

// Credit normaliza la unidad, suma a entradas y disponible y recalcula la
// reposición, de forma atómica sobre la clave.
func (uc *LedgerUseCase) Credit(ctx context.Context, in CreditInput) error {
	material, err := uc.validate(ctx, in.Location, in.RawMaterialID, in.Quantity)
	if err != nil {
		return err
	}
	qty, metric := stock.Normalize(in.Quantity, in.Unit)

	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		rec, err := lockRecord(ctx, r, in.Location, in.RawMaterialID, material, metric)
		if err != nil {
			return err
		}
		rec.Credit(qty)
		return r.Stock.Upsert(ctx, rec)
	})
}

// Debit normaliza la unidad, suma a salidas y descuenta del disponible.
func (uc *LedgerUseCase) Debit(ctx context.Context, in DebitInput) error {
	material, err := uc.validate(ctx, in.Location, in.RawMaterialID, in.Quantity)
	if err != nil {
		return err
	}
	qty, metric := stock.Normalize(in.Quantity, in.Unit)

	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		rec, err := lockRecord(ctx, r, in.Location, in.RawMaterialID, material, metric)
		if err != nil {
			return err
		}
		if err := rec.Debit(qty, in.AllowOverdraft); err != nil {
			return err
		}
		return r.Stock.Upsert(ctx, rec)
	})
}

// GetBalance devuelve el registro de stock de la clave; un registro en cero
// si la clave todavía no se materializó. Lectura sin bloqueo.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error) {
	if !loc.Valid() || rawMaterialID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.stockRepo.Get(ctx, loc, rawMaterialID)
	if err != nil {
		return nil, err
	}
	if rec.Metric == "" {
		material, err := uc.materialRepo.GetByID(ctx, rawMaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrUnknownMaterial
		}
		_, rec.Metric = stock.Normalize(decimal.Zero, material.Metric)
	}
	return rec, nil
}

func (uc *LedgerUseCase) validate(ctx context.Context, loc entity.Location, rawMaterialID int64, qty decimal.Decimal) (*entity.RawMaterial, error) {
	if !loc.Valid() || rawMaterialID <= 0 || !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.IsDeleted {
		return nil, domain.ErrUnknownMaterial
	}
	return material, nil
}

// lockRecord bloquea la fila de la clave; si no existe, prepara el registro
// perezoso con la métrica canónica del material y el umbral configurado.
func lockRecord(ctx context.Context, r TxRepos, loc entity.Location, rawMaterialID int64, material *entity.RawMaterial, metric string) (*entity.StockRecord, error) {
	rec, err := r.Stock.GetForUpdate(ctx, loc, rawMaterialID)
	if err != nil {
		return nil, err
	}
	if rec.Metric == "" {
		if metric == "" && material != nil {
			_, metric = stock.Normalize(decimal.Zero, material.Metric)
		}
		rec.Metric = metric

		threshold, err := r.Thresholds.Get(ctx, loc, rawMaterialID)
		if err != nil {
			return nil, err
		}
		if threshold != nil {
			rec.SetMinimum(threshold.MinQuantity)
		}
	}
	return rec, nil
}
