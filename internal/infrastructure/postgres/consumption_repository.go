package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo registro de consumos diarios sobre PostgreSQL (usable con pool o tx).
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository construye el adaptador de consumos. Pasar pool o tx (Querier).
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

// UpsertAdd acumula sobre el total existente de la clave (materia, fecha,
// ubicación); nunca sobrescribe.
func (r *ConsumptionRepo) UpsertAdd(ctx context.Context, e *entity.ConsumptionEntry) error {
	query := `
		INSERT INTO consumption_entries
			(raw_material_id, consumption_date, location_type, location_id, quantity, metric)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (raw_material_id, consumption_date, location_type, location_id)
		DO UPDATE SET quantity = consumption_entries.quantity + EXCLUDED.quantity`
	_, err := r.q.Exec(ctx, query,
		e.RawMaterialID, e.Date, e.Location.Type, e.Location.ID, e.Quantity, e.Metric,
	)
	if err != nil {
		return fmt.Errorf("upsert consumption: %w", err)
	}
	return nil
}

// Get devuelve la fila acumulada de la clave, nil si no hay consumo registrado.
func (r *ConsumptionRepo) Get(ctx context.Context, rawMaterialID int64, date time.Time, loc entity.Location) (*entity.ConsumptionEntry, error) {
	query := `
		SELECT raw_material_id, consumption_date, location_type, location_id, quantity, metric
		FROM consumption_entries
		WHERE raw_material_id = $1 AND consumption_date = $2::date
		  AND location_type = $3 AND location_id = $4`
	var e entity.ConsumptionEntry
	err := r.q.QueryRow(ctx, query, rawMaterialID, date, loc.Type, loc.ID).Scan(
		&e.RawMaterialID, &e.Date, &e.Location.Type, &e.Location.ID, &e.Quantity, &e.Metric,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumption: %w", err)
	}
	return &e, nil
}

// DailyReport cruza los traslados del día contra el consumo acumulado de la
// ubicación: cuánto llegó, cuánto se consumió y cuánto queda por materia.
func (r *ConsumptionRepo) DailyReport(ctx context.Context, loc entity.Location, date time.Time) ([]repository.ConsumptionReportItem, error) {
	query := `
		SELECT l.name, m.name, COALESCE(c.metric, t.metric),
		       COALESCE(t.transferred, 0), COALESCE(c.quantity, 0),
		       COALESCE(t.transferred, 0) - COALESCE(c.quantity, 0)
		FROM raw_materials m
		JOIN locations l ON l.location_type = $1 AND l.id = $2
		LEFT JOIN (
			SELECT raw_material_id, metric, SUM(quantity) AS transferred
			FROM transfer_entries
			WHERE destination_type = $1 AND destination_id = $2
			  AND transferred_at::date = $3::date
			GROUP BY raw_material_id, metric
		) t ON t.raw_material_id = m.id
		LEFT JOIN consumption_entries c
			ON c.raw_material_id = m.id AND c.consumption_date = $3::date
			AND c.location_type = $1 AND c.location_id = $2
		WHERE t.raw_material_id IS NOT NULL OR c.raw_material_id IS NOT NULL
		ORDER BY m.name`
	rows, err := r.q.Query(ctx, query, loc.Type, loc.ID, date)
	if err != nil {
		return nil, fmt.Errorf("daily consumption report: %w", err)
	}
	defer rows.Close()

	var items []repository.ConsumptionReportItem
	for rows.Next() {
		var it repository.ConsumptionReportItem
		if err := rows.Scan(
			&it.LocationName, &it.RawMaterialName, &it.Metric,
			&it.TransferredQuantity, &it.ConsumedQuantity, &it.RemainingQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan consumption report: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
