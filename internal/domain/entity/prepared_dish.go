package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// KitchenPreparedDish lote de un plato preparado en una cocina en una fecha.
// AvailableQuantity baja cuando el lote se traslada a restaurantes.
type KitchenPreparedDish struct {
	ID                int64
	DishID            int64
	KitchenID         int64
	PreparedQuantity  decimal.Decimal
	AvailableQuantity decimal.Decimal
	PreparedOn        time.Time // fecha de negocio
}

// PreparedDishTransfer traslado de platos preparados cocina -> restaurante.
type PreparedDishTransfer struct {
	ID                      int64
	DishID                  int64
	SourceKitchenID         int64
	DestinationRestaurantID int64
	Quantity                decimal.Decimal
	TransferredAt           time.Time
}
