package entity

// LocationType discrimina los tres tipos de ubicación de la operación.
type LocationType string

const (
	LocationStoreroom  LocationType = "storeroom"
	LocationKitchen    LocationType = "kitchen"
	LocationRestaurant LocationType = "restaurant"
)

// Valid indica si el tipo es uno de los tres conocidos.
func (t LocationType) Valid() bool {
	switch t {
	case LocationStoreroom, LocationKitchen, LocationRestaurant:
		return true
	}
	return false
}

// Location identifica una ubicación concreta (componente de clave compuesta,
// no una entidad independiente).
type Location struct {
	Type LocationType
	ID   int64
}

// Valid valida tipo e id.
func (l Location) Valid() bool {
	return l.Type.Valid() && l.ID > 0
}

// NamedLocation fila de catálogo de bodegas, cocinas o restaurantes.
type NamedLocation struct {
	Type   LocationType
	ID     int64
	Name   string
	Status string // active | inactive
}
