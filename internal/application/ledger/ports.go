package ledger

import (
	"context"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD. El runner los
// construye sobre la tx para que cada evento del libro (compra, traslado,
// venta, preparación, umbrales) mute todas sus claves de forma atómica.
type TxRepos struct {
	Stock       repository.StockRecordRepository
	Transfers   repository.TransferRepository
	Consumption repository.ConsumptionRepository
	Purchases   repository.PurchaseRepository
	Thresholds  repository.ThresholdRepository
	Prepared    repository.PreparedDishRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil; Rollback si no.
// Garantiza atomicidad para el motor de stock: o persisten todas las
// mutaciones de un evento lógico o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
