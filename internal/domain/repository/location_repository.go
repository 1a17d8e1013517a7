package repository

import (
	"context"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// LocationRepository catálogo de bodegas, cocinas y restaurantes.
type LocationRepository interface {
	GetByID(ctx context.Context, locType entity.LocationType, id int64) (*entity.NamedLocation, error)
	GetByName(ctx context.Context, locType entity.LocationType, name string) (*entity.NamedLocation, error)
	List(ctx context.Context, locType entity.LocationType, onlyActive bool) ([]*entity.NamedLocation, error)
}
