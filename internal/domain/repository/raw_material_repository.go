package repository

import (
	"context"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// RawMaterialRepository puerto de datos de referencia de materias primas.
type RawMaterialRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.RawMaterial, error)
	GetByName(ctx context.Context, name string) (*entity.RawMaterial, error)
	List(ctx context.Context, onlyNotDeleted bool) ([]*entity.RawMaterial, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, m *entity.RawMaterial) error
	// SoftDelete marca is_deleted; la fila nunca se borra físicamente.
	SoftDelete(ctx context.Context, id int64) error
}
