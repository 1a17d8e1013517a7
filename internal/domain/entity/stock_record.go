package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
)

// StockRecord saldo vivo de una materia prima en una ubicación, clave
// (tipo ubicación, id ubicación, id materia prima). Lo muta únicamente el
// libro de stock; el resto de componentes solicita débitos/créditos.
// Invariante: CurrentlyAvailable = Opening + Incoming - Outgoing (5 decimales)
// y CurrentlyAvailable >= 0 tras cada mutación.
type StockRecord struct {
	Location      Location
	RawMaterialID int64
	Metric        string // unidad canónica del registro
	Opening       decimal.Decimal
	Incoming      decimal.Decimal
	Outgoing      decimal.Decimal

	CurrentlyAvailable decimal.Decimal
	AverageUnitCost    decimal.Decimal
	MinimumQuantity    decimal.Decimal
	QuantityNeeded     decimal.Decimal
	UpdatedAt          time.Time
}

// NewStockRecord crea el registro en cero para una clave. Se materializa
// de forma perezosa con la primera compra o traslado hacia la ubicación.
func NewStockRecord(loc Location, rawMaterialID int64, metric string) *StockRecord {
	return &StockRecord{
		Location:      loc,
		RawMaterialID: rawMaterialID,
		Metric:        metric,
	}
}

// Credit suma una cantidad ya canónica a las entradas y al disponible.
func (r *StockRecord) Credit(qty decimal.Decimal) {
	r.Incoming = stock.Round(r.Incoming.Add(qty))
	r.recompute()
}

// Debit suma a las salidas y descuenta del disponible. Rechaza con
// ErrInsufficientStock cuando dejaría el saldo negativo, salvo que el
// caller habilite sobregiro de forma explícita.
func (r *StockRecord) Debit(qty decimal.Decimal, allowOverdraft bool) error {
	remaining := stock.Round(r.CurrentlyAvailable.Sub(qty))
	if remaining.LessThan(decimal.Zero) && !allowOverdraft {
		return domain.ErrInsufficientStock
	}
	r.Outgoing = stock.Round(r.Outgoing.Add(qty))
	r.recompute()
	return nil
}

// SetMinimum aplica un nuevo umbral mínimo y recalcula la reposición.
func (r *StockRecord) SetMinimum(min decimal.Decimal) {
	if min.LessThan(decimal.Zero) {
		min = decimal.Zero
	}
	r.MinimumQuantity = stock.Round(min)
	r.QuantityNeeded = stock.QuantityNeeded(r.MinimumQuantity, r.CurrentlyAvailable)
}

// CheckInvariant verifica la identidad contable del registro a 5 decimales.
func (r *StockRecord) CheckInvariant() error {
	expected := stock.Round(r.Opening.Add(r.Incoming).Sub(r.Outgoing))
	if !stock.Round(r.CurrentlyAvailable).Equal(expected) {
		return domain.ErrBalanceInvariant
	}
	return nil
}

func (r *StockRecord) recompute() {
	r.CurrentlyAvailable = stock.Round(r.Opening.Add(r.Incoming).Sub(r.Outgoing))
	r.QuantityNeeded = stock.QuantityNeeded(r.MinimumQuantity, r.CurrentlyAvailable)
}
