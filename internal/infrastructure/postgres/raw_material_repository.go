package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/cases"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo catálogo de materias primas sobre PostgreSQL (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador de materias primas. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// GetByID devuelve la materia prima, nil si no existe.
func (r *RawMaterialRepo) GetByID(ctx context.Context, id int64) (*entity.RawMaterial, error) {
	query := `
		SELECT id, name, category, metric, is_deleted
		FROM raw_materials WHERE id = $1`
	var m entity.RawMaterial
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Category, &m.Metric, &m.IsDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// GetByName busca por nombre sin distinguir mayúsculas; el nombre de entrada
// se pliega con case folding Unicode para que coincida con LOWER() de Postgres
// también en nombres acentuados.
func (r *RawMaterialRepo) GetByName(ctx context.Context, name string) (*entity.RawMaterial, error) {
	folded := cases.Fold().String(name)
	query := `
		SELECT id, name, category, metric, is_deleted
		FROM raw_materials WHERE LOWER(name) = $1`
	var m entity.RawMaterial
	err := r.q.QueryRow(ctx, query, folded).Scan(&m.ID, &m.Name, &m.Category, &m.Metric, &m.IsDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material by name: %w", err)
	}
	return &m, nil
}

// List lista las materias primas; onlyNotDeleted omite las dadas de baja.
func (r *RawMaterialRepo) List(ctx context.Context, onlyNotDeleted bool) ([]*entity.RawMaterial, error) {
	query := `
		SELECT id, name, category, metric, is_deleted
		FROM raw_materials
		WHERE ($1 = false OR NOT is_deleted)
		ORDER BY category, name`
	rows, err := r.q.Query(ctx, query, onlyNotDeleted)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Metric, &m.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Categories categorías distintas de las materias activas.
func (r *RawMaterialRepo) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM raw_materials
		WHERE NOT is_deleted ORDER BY category`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create da de alta una materia prima; el nombre es único entre las activas.
func (r *RawMaterialRepo) Create(ctx context.Context, m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (name, category, metric, is_deleted)
		VALUES ($1, $2, $3, false)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, m.Name, m.Category, m.Metric).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// SoftDelete marca is_deleted; la fila y sus saldos históricos persisten.
func (r *RawMaterialRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE raw_materials SET is_deleted = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUnknownMaterial
	}
	return nil
}
