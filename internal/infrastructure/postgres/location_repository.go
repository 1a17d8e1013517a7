package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo catálogo de bodegas, cocinas y restaurantes sobre PostgreSQL
// (usable con pool o tx). Los tres tipos comparten tabla, discriminados por
// location_type.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) GetByID(ctx context.Context, locType entity.LocationType, id int64) (*entity.NamedLocation, error) {
	var loc entity.NamedLocation
	err := r.q.QueryRow(ctx, `
		SELECT location_type, id, name, status
		FROM locations WHERE location_type = $1 AND id = $2`,
		locType, id,
	).Scan(&loc.Type, &loc.ID, &loc.Name, &loc.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

func (r *LocationRepo) GetByName(ctx context.Context, locType entity.LocationType, name string) (*entity.NamedLocation, error) {
	var loc entity.NamedLocation
	err := r.q.QueryRow(ctx, `
		SELECT location_type, id, name, status
		FROM locations WHERE location_type = $1 AND LOWER(name) = LOWER($2)`,
		locType, name,
	).Scan(&loc.Type, &loc.ID, &loc.Name, &loc.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by name: %w", err)
	}
	return &loc, nil
}

func (r *LocationRepo) List(ctx context.Context, locType entity.LocationType, onlyActive bool) ([]*entity.NamedLocation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT location_type, id, name, status
		FROM locations
		WHERE location_type = $1 AND ($2 = false OR status = 'active')
		ORDER BY name`,
		locType, onlyActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var out []*entity.NamedLocation
	for rows.Next() {
		var loc entity.NamedLocation
		if err := rows.Scan(&loc.Type, &loc.ID, &loc.Name, &loc.Status); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, &loc)
	}
	return out, rows.Err()
}
