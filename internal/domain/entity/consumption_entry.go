package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionEntry consumo acumulado de una materia prima en una ubicación y
// fecha. Clave (materia, fecha, tipo ubicación, id ubicación); los consumos
// nuevos SUMAN al total existente de la clave, nunca lo sobrescriben.
type ConsumptionEntry struct {
	RawMaterialID int64
	Date          time.Time // fecha de negocio, truncada a día
	Location      Location
	Quantity      decimal.Decimal // cantidad canónica acumulada
	Metric        string
}
