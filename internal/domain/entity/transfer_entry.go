package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferEntry fila inmutable del log de traslados bodega -> cocina/restaurante.
// Varias filas pueden compartir TransferGroupID (un evento que mueve varias materias).
type TransferEntry struct {
	TransferGroupID   string
	RawMaterialID     int64
	Quantity          decimal.Decimal // cantidad canónica
	Metric            string
	SourceStoreroomID int64
	Destination       Location
	TransferredAt     time.Time
}
