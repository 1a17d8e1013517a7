package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// StockRecordRepo implementación del libro de stock sobre PostgreSQL
// (usable con pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador del libro de stock. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

const stockRecordColumns = `
	location_type, location_id, raw_material_id, metric,
	opening, incoming, outgoing, currently_available,
	average_unit_cost, minimum_quantity, quantity_needed, updated_at`

func (r *StockRecordRepo) scanRecord(row pgx.Row, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error) {
	var rec entity.StockRecord
	err := row.Scan(
		&rec.Location.Type, &rec.Location.ID, &rec.RawMaterialID, &rec.Metric,
		&rec.Opening, &rec.Incoming, &rec.Outgoing, &rec.CurrentlyAvailable,
		&rec.AverageUnitCost, &rec.MinimumQuantity, &rec.QuantityNeeded, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Creación perezosa: la clave sin fila es un registro en cero.
			return entity.NewStockRecord(loc, rawMaterialID, ""), nil
		}
		return nil, err
	}
	return &rec, nil
}

// Get obtiene el registro de stock de la clave, sin bloqueo.
func (r *StockRecordRepo) Get(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records
		WHERE location_type = $1 AND location_id = $2 AND raw_material_id = $3`
	rec, err := r.scanRecord(r.q.QueryRow(ctx, query, loc.Type, loc.ID, rawMaterialID), loc, rawMaterialID)
	if err != nil {
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return rec, nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción. Una clave sin fila se
// materializa primero como placeholder (métrica vacía) y se vuelve a
// seleccionar bajo bloqueo: un SELECT sobre cero filas no toma ningún
// candado, y dos transacciones que estrenan la clave se pisarían el primer
// crédito al recalcular ambas desde cero.
func (r *StockRecordRepo) GetForUpdate(ctx context.Context, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records
		WHERE location_type = $1 AND location_id = $2 AND raw_material_id = $3
		FOR UPDATE`
	rec, err := r.selectForUpdate(ctx, query, loc, rawMaterialID)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO stock_records (` + stockRecordColumns + `)
			VALUES ($1, $2, $3, '', 0, 0, 0, 0, 0, 0, 0, now())
			ON CONFLICT (location_type, location_id, raw_material_id) DO NOTHING`
		if _, err := r.q.Exec(ctx, insert, loc.Type, loc.ID, rawMaterialID); err != nil {
			return nil, fmt.Errorf("materialize stock record: %w", err)
		}
		// Segunda pasada: encuentra nuestro placeholder o la fila que otra
		// transacción acaba de confirmar, ya con el candado tomado.
		rec, err = r.selectForUpdate(ctx, query, loc, rawMaterialID)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock record for update: %w", err)
	}
	return rec, nil
}

func (r *StockRecordRepo) selectForUpdate(ctx context.Context, query string, loc entity.Location, rawMaterialID int64) (*entity.StockRecord, error) {
	var rec entity.StockRecord
	err := r.q.QueryRow(ctx, query, loc.Type, loc.ID, rawMaterialID).Scan(
		&rec.Location.Type, &rec.Location.ID, &rec.RawMaterialID, &rec.Metric,
		&rec.Opening, &rec.Incoming, &rec.Outgoing, &rec.CurrentlyAvailable,
		&rec.AverageUnitCost, &rec.MinimumQuantity, &rec.QuantityNeeded, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert materializa o actualiza el registro por su clave triple.
func (r *StockRecordRepo) Upsert(ctx context.Context, rec *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (` + stockRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (location_type, location_id, raw_material_id)
		DO UPDATE SET
			metric = EXCLUDED.metric,
			opening = EXCLUDED.opening,
			incoming = EXCLUDED.incoming,
			outgoing = EXCLUDED.outgoing,
			currently_available = EXCLUDED.currently_available,
			average_unit_cost = EXCLUDED.average_unit_cost,
			minimum_quantity = EXCLUDED.minimum_quantity,
			quantity_needed = EXCLUDED.quantity_needed,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		rec.Location.Type, rec.Location.ID, rec.RawMaterialID, rec.Metric,
		rec.Opening, rec.Incoming, rec.Outgoing, rec.CurrentlyAvailable,
		rec.AverageUnitCost, rec.MinimumQuantity, rec.QuantityNeeded,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

// Report lista el stock de una ubicación con nombre y categoría del material.
// category vacía o "all" = sin filtro.
func (r *StockRecordRepo) Report(ctx context.Context, loc entity.Location, category string) ([]repository.StockReportItem, error) {
	query := `
		SELECT l.name, s.raw_material_id, m.name, m.category, s.metric,
		       s.opening, s.incoming, s.outgoing, s.currently_available,
		       s.minimum_quantity, s.quantity_needed
		FROM stock_records s
		JOIN raw_materials m ON m.id = s.raw_material_id
		JOIN locations l ON l.location_type = s.location_type AND l.id = s.location_id
		WHERE s.location_type = $1 AND s.location_id = $2
		  AND s.metric <> ''
		  AND ($3 = '' OR $3 = 'all' OR m.category = $3)
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, loc.Type, loc.ID, category)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()
	return scanStockReport(rows)
}

// ReportByType lista el stock de todas las ubicaciones de un tipo.
func (r *StockRecordRepo) ReportByType(ctx context.Context, locType entity.LocationType) ([]repository.StockReportItem, error) {
	query := `
		SELECT l.name, s.raw_material_id, m.name, m.category, s.metric,
		       s.opening, s.incoming, s.outgoing, s.currently_available,
		       s.minimum_quantity, s.quantity_needed
		FROM stock_records s
		JOIN raw_materials m ON m.id = s.raw_material_id
		JOIN locations l ON l.location_type = s.location_type AND l.id = s.location_id
		WHERE s.location_type = $1 AND s.metric <> ''
		ORDER BY l.name, m.category, m.name`
	rows, err := r.q.Query(ctx, query, locType)
	if err != nil {
		return nil, fmt.Errorf("stock report by type: %w", err)
	}
	defer rows.Close()
	return scanStockReport(rows)
}

func scanStockReport(rows pgx.Rows) ([]repository.StockReportItem, error) {
	var items []repository.StockReportItem
	for rows.Next() {
		var it repository.StockReportItem
		if err := rows.Scan(
			&it.LocationName, &it.RawMaterialID, &it.RawMaterialName, &it.Category, &it.Metric,
			&it.Opening, &it.Incoming, &it.Outgoing, &it.CurrentlyAvailable,
			&it.MinimumRequired, &it.QuantityNeeded,
		); err != nil {
			return nil, fmt.Errorf("scan stock report: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
