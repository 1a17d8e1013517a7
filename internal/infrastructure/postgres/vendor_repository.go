package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo catálogo de proveedores sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func (r *VendorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx,
		`SELECT id, name, status FROM vendors WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

func (r *VendorRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, status FROM vendors
		WHERE ($1 = false OR status = 'active')
		ORDER BY name`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Status); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
