package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo historial inmutable de compras sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create agrega la fila de historial y devuelve su id generado.
func (r *PurchaseRepo) Create(ctx context.Context, e *entity.PurchaseEntry) error {
	query := `
		INSERT INTO purchase_entries
			(vendor_id, invoice_number, raw_material_id, quantity, metric,
			 total_cost, storeroom_id, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.VendorID, e.InvoiceNumber, e.RawMaterialID, e.Quantity, e.Metric,
		e.TotalCost, e.StoreroomID, e.PurchaseDate, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

const purchaseReportSelect = `
	SELECT p.id, p.vendor_id, v.name, p.invoice_number, m.name,
	       p.quantity, p.metric, p.total_cost, s.name, p.purchase_date, p.created_at
	FROM purchase_entries p
	JOIN vendors v ON v.id = p.vendor_id
	JOIN raw_materials m ON m.id = p.raw_material_id
	JOIN locations s ON s.location_type = 'storeroom' AND s.id = p.storeroom_id`

// ListAll lista todo el historial, más reciente primero.
func (r *PurchaseRepo) ListAll(ctx context.Context) ([]repository.PurchaseReportRow, error) {
	rows, err := r.q.Query(ctx, purchaseReportSelect+`
	ORDER BY p.purchase_date DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	return scanPurchaseReport(rows)
}

// ListByDate devuelve las compras del día y el total gastado en esa fecha.
func (r *PurchaseRepo) ListByDate(ctx context.Context, date time.Time) ([]repository.PurchaseReportRow, decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, purchaseReportSelect+`
	WHERE p.purchase_date = $1::date
	ORDER BY p.id`, date)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("list purchases by date: %w", err)
	}
	defer rows.Close()

	out, err := scanPurchaseReport(rows)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range out {
		total = total.Add(row.TotalCost)
	}
	return out, total, nil
}

// ListByVendorAndRange resume por factura en el rango. vendorID nil omite el
// filtro de proveedor; el parámetro viaja siempre posicional, nunca interpolado.
func (r *PurchaseRepo) ListByVendorAndRange(ctx context.Context, vendorID *int64, from, to time.Time) ([]repository.InvoiceSummaryRow, error) {
	query := `
		SELECT p.invoice_number, p.vendor_id, v.name, p.storeroom_id, s.name,
		       SUM(p.total_cost), COUNT(*), p.purchase_date
		FROM purchase_entries p
		JOIN vendors v ON v.id = p.vendor_id
		JOIN locations s ON s.location_type = 'storeroom' AND s.id = p.storeroom_id
		WHERE p.purchase_date BETWEEN $1::date AND $2::date
		  AND ($3::bigint IS NULL OR p.vendor_id = $3)
		GROUP BY p.invoice_number, p.vendor_id, v.name, p.storeroom_id, s.name, p.purchase_date
		ORDER BY p.purchase_date DESC, p.invoice_number`
	rows, err := r.q.Query(ctx, query, from, to, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by vendor: %w", err)
	}
	defer rows.Close()

	var out []repository.InvoiceSummaryRow
	for rows.Next() {
		var row repository.InvoiceSummaryRow
		if err := rows.Scan(
			&row.InvoiceNumber, &row.VendorID, &row.VendorName,
			&row.StoreroomID, &row.StoreroomName,
			&row.TotalCost, &row.ItemCount, &row.PurchaseDate,
		); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// VendorTotals total comprado por proveedor en el rango.
func (r *PurchaseRepo) VendorTotals(ctx context.Context, vendorID *int64, from, to time.Time) ([]repository.VendorTotalRow, error) {
	query := `
		SELECT v.name, SUM(p.total_cost)
		FROM purchase_entries p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.purchase_date BETWEEN $1::date AND $2::date
		  AND ($3::bigint IS NULL OR p.vendor_id = $3)
		GROUP BY v.name
		ORDER BY SUM(p.total_cost) DESC`
	rows, err := r.q.Query(ctx, query, from, to, vendorID)
	if err != nil {
		return nil, fmt.Errorf("vendor totals: %w", err)
	}
	defer rows.Close()

	var out []repository.VendorTotalRow
	for rows.Next() {
		var row repository.VendorTotalRow
		if err := rows.Scan(&row.VendorName, &row.TotalCost); err != nil {
			return nil, fmt.Errorf("scan vendor total: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Years años con compras registradas, descendente (para filtros de reporte).
func (r *PurchaseRepo) Years(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM purchase_date)::int
		FROM purchase_entries
		ORDER BY 1 DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("purchase years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func scanPurchaseReport(rows pgx.Rows) ([]repository.PurchaseReportRow, error) {
	var out []repository.PurchaseReportRow
	for rows.Next() {
		var row repository.PurchaseReportRow
		if err := rows.Scan(
			&row.ID, &row.VendorID, &row.VendorName, &row.InvoiceNumber, &row.MaterialName,
			&row.Quantity, &row.Metric, &row.TotalCost, &row.StoreroomName,
			&row.PurchaseDate, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
