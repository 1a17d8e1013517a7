package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo log inmutable de traslados sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create agrega una fila al log. Las filas nunca se actualizan ni se borran.
func (r *TransferRepo) Create(ctx context.Context, e *entity.TransferEntry) error {
	query := `
		INSERT INTO transfer_entries
			(transfer_group_id, raw_material_id, quantity, metric,
			 source_storeroom_id, destination_type, destination_id, transferred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.TransferGroupID, e.RawMaterialID, e.Quantity, e.Metric,
		e.SourceStoreroomID, e.Destination.Type, e.Destination.ID, e.TransferredAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer entry: %w", err)
	}
	return nil
}

// ListByGroup devuelve las filas crudas de un grupo de traslado.
func (r *TransferRepo) ListByGroup(ctx context.Context, groupID string) ([]*entity.TransferEntry, error) {
	query := `
		SELECT transfer_group_id, raw_material_id, quantity, metric,
		       source_storeroom_id, destination_type, destination_id, transferred_at
		FROM transfer_entries
		WHERE transfer_group_id = $1
		ORDER BY raw_material_id`
	rows, err := r.q.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by group: %w", err)
	}
	defer rows.Close()

	var entries []*entity.TransferEntry
	for rows.Next() {
		var e entity.TransferEntry
		if err := rows.Scan(
			&e.TransferGroupID, &e.RawMaterialID, &e.Quantity, &e.Metric,
			&e.SourceStoreroomID, &e.Destination.Type, &e.Destination.ID, &e.TransferredAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

const transferReportSelect = `
	SELECT m.name, m.category, t.quantity, t.metric,
	       src.name, t.destination_type, dst.name, t.transferred_at, t.transfer_group_id
	FROM transfer_entries t
	JOIN raw_materials m ON m.id = t.raw_material_id
	JOIN locations src ON src.location_type = 'storeroom' AND src.id = t.source_storeroom_id
	JOIN locations dst ON dst.location_type = t.destination_type AND dst.id = t.destination_id`

// ListByDate lista todos los traslados de una fecha de negocio, sin filtrar por destino.
func (r *TransferRepo) ListByDate(ctx context.Context, date time.Time) ([]repository.TransferReportRow, error) {
	query := transferReportSelect + `
	WHERE t.transferred_at::date = $1::date
	ORDER BY t.transferred_at, m.name`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list transfers by date: %w", err)
	}
	defer rows.Close()
	return scanTransferReport(rows)
}

// Report lista los traslados que cumplen el filtro (origen, destino, fecha y
// opcionalmente grupo).
func (r *TransferRepo) Report(ctx context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	query := transferReportSelect + `
	WHERE t.source_storeroom_id = $1
	  AND t.destination_type = $2 AND t.destination_id = $3
	  AND t.transferred_at::date = $4::date
	  AND ($5 = '' OR t.transfer_group_id = $5)
	ORDER BY t.transferred_at, m.name`
	rows, err := r.q.Query(ctx, query,
		f.SourceStoreroomID, f.Destination.Type, f.Destination.ID, f.Date, f.GroupID)
	if err != nil {
		return nil, fmt.Errorf("transfer report: %w", err)
	}
	defer rows.Close()
	return scanTransferReport(rows)
}

// ReportTotals modo "total": una fila por materia prima con la suma de lo
// trasladado bajo el filtro.
func (r *TransferRepo) ReportTotals(ctx context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	query := `
		SELECT m.name, m.category, SUM(t.quantity), t.metric,
		       src.name, t.destination_type, dst.name
		FROM transfer_entries t
		JOIN raw_materials m ON m.id = t.raw_material_id
		JOIN locations src ON src.location_type = 'storeroom' AND src.id = t.source_storeroom_id
		JOIN locations dst ON dst.location_type = t.destination_type AND dst.id = t.destination_id
		WHERE t.source_storeroom_id = $1
		  AND t.destination_type = $2 AND t.destination_id = $3
		  AND t.transferred_at::date = $4::date
		  AND ($5 = '' OR t.transfer_group_id = $5)
		GROUP BY m.name, m.category, t.metric, src.name, t.destination_type, dst.name
		ORDER BY m.name`
	rows, err := r.q.Query(ctx, query,
		f.SourceStoreroomID, f.Destination.Type, f.Destination.ID, f.Date, f.GroupID)
	if err != nil {
		return nil, fmt.Errorf("transfer totals: %w", err)
	}
	defer rows.Close()

	var out []repository.TransferReportRow
	for rows.Next() {
		var row repository.TransferReportRow
		if err := rows.Scan(
			&row.RawMaterialName, &row.Category, &row.Quantity, &row.Metric,
			&row.TransferredFrom, &row.DestinationType, &row.TransferredTo,
		); err != nil {
			return nil, fmt.Errorf("scan transfer totals: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanTransferReport(rows pgx.Rows) ([]repository.TransferReportRow, error) {
	var out []repository.TransferReportRow
	for rows.Next() {
		var row repository.TransferReportRow
		if err := rows.Scan(
			&row.RawMaterialName, &row.Category, &row.Quantity, &row.Metric,
			&row.TransferredFrom, &row.DestinationType, &row.TransferredTo,
			&row.TransferredAt, &row.TransferGroupID,
		); err != nil {
			return nil, fmt.Errorf("scan transfer report: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
