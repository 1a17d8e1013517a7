package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo umbrales mínimos de stock sobre PostgreSQL (usable con pool o tx).
type ThresholdRepo struct {
	q Querier
}

// NewThresholdRepository construye el adaptador de umbrales. Pasar pool o tx (Querier).
func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// Upsert inserta o actualiza el umbral de la clave.
func (r *ThresholdRepo) Upsert(ctx context.Context, t *entity.MinimumStockThreshold) error {
	query := `
		INSERT INTO minimum_stock_thresholds
			(location_type, location_id, raw_material_id, min_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location_type, location_id, raw_material_id)
		DO UPDATE SET min_quantity = EXCLUDED.min_quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		t.Location.Type, t.Location.ID, t.RawMaterialID, t.MinQuantity, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}

// Get devuelve el umbral de la clave, nil si no hay umbral configurado.
func (r *ThresholdRepo) Get(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.MinimumStockThreshold, error) {
	query := `
		SELECT location_type, location_id, raw_material_id, min_quantity, updated_at
		FROM minimum_stock_thresholds
		WHERE location_type = $1 AND location_id = $2 AND raw_material_id = $3`
	var t entity.MinimumStockThreshold
	err := r.q.QueryRow(ctx, query, loc.Type, loc.ID, rawMaterialID).Scan(
		&t.Location.Type, &t.Location.ID, &t.RawMaterialID, &t.MinQuantity, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get threshold: %w", err)
	}
	return &t, nil
}

// ListForLocation lista las materias activas con el umbral de la ubicación
// (LEFT JOIN; 0 cuando no hay umbral).
func (r *ThresholdRepo) ListForLocation(ctx context.Context, loc entity.Location) ([]repository.MaterialThresholdRow, error) {
	query := `
		SELECT m.id, m.name, m.category, m.metric, COALESCE(t.min_quantity, 0)
		FROM raw_materials m
		LEFT JOIN minimum_stock_thresholds t
			ON t.raw_material_id = m.id
			AND t.location_type = $1 AND t.location_id = $2
		WHERE NOT m.is_deleted
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, loc.Type, loc.ID)
	if err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	defer rows.Close()

	var out []repository.MaterialThresholdRow
	for rows.Next() {
		var row repository.MaterialThresholdRow
		if err := rows.Scan(&row.RawMaterialID, &row.Name, &row.Category, &row.Metric, &row.MinQuantity); err != nil {
			return nil, fmt.Errorf("scan threshold row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
