package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinimumStockThreshold umbral mínimo configurado para una materia prima en
// una ubicación. Su mutación cascadea al StockRecord correspondiente
// (minimum_quantity y quantity_needed).
type MinimumStockThreshold struct {
	Location      Location
	RawMaterialID int64
	MinQuantity   decimal.Decimal
	UpdatedAt     time.Time
}
