package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

// CatalogUseCase lecturas y altas de datos de referencia: materias primas,
// platos, proveedores y ubicaciones. No toca el libro de stock.
type CatalogUseCase struct {
	materialRepo repository.RawMaterialRepository
	dishRepo     repository.DishRepository
	recipeRepo   repository.DishRecipeRepository
	vendorRepo   repository.VendorRepository
	locationRepo repository.LocationRepository
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(
	materialRepo repository.RawMaterialRepository,
	dishRepo repository.DishRepository,
	recipeRepo repository.DishRecipeRepository,
	vendorRepo repository.VendorRepository,
	locationRepo repository.LocationRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		materialRepo: materialRepo,
		dishRepo:     dishRepo,
		recipeRepo:   recipeRepo,
		vendorRepo:   vendorRepo,
		locationRepo: locationRepo,
	}
}

// ListMaterials materias primas; onlyActive omite las dadas de baja.
func (uc *CatalogUseCase) ListMaterials(ctx context.Context, onlyActive bool) ([]*entity.RawMaterial, error) {
	return uc.materialRepo.List(ctx, onlyActive)
}

// MaterialCategories categorías distintas de materias activas.
func (uc *CatalogUseCase) MaterialCategories(ctx context.Context) ([]string, error) {
	return uc.materialRepo.Categories(ctx)
}

// CreateMaterial da de alta una materia prima con su unidad de catálogo.
func (uc *CatalogUseCase) CreateMaterial(ctx context.Context, name, category, metric string) (*entity.RawMaterial, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(category) == "" || strings.TrimSpace(metric) == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.RawMaterial{Name: name, Category: category, Metric: metric}
	if err := uc.materialRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMaterial baja lógica; los saldos y el historial de la materia persisten.
func (uc *CatalogUseCase) DeleteMaterial(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.materialRepo.SoftDelete(ctx, id)
}

// ListDishes platos del menú.
func (uc *CatalogUseCase) ListDishes(ctx context.Context) ([]*entity.Dish, error) {
	return uc.dishRepo.List(ctx)
}

// DishCategories categorías de platos.
func (uc *CatalogUseCase) DishCategories(ctx context.Context) ([]string, error) {
	return uc.dishRepo.Categories(ctx)
}

// DishRecipe filas crudas de receta de un plato.
func (uc *CatalogUseCase) DishRecipe(ctx context.Context, dishID int64) ([]entity.DishRecipeRow, error) {
	if dishID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	dish, err := uc.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, domain.ErrUnknownDish
	}
	return uc.recipeRepo.ListByDish(ctx, dishID)
}

// ListVendors proveedores; onlyActive omite los inactivos.
func (uc *CatalogUseCase) ListVendors(ctx context.Context, onlyActive bool) ([]*entity.Vendor, error) {
	return uc.vendorRepo.List(ctx, onlyActive)
}

// ListLocations bodegas, cocinas o restaurantes según el tipo.
func (uc *CatalogUseCase) ListLocations(ctx context.Context, locType entity.LocationType, onlyActive bool) ([]*entity.NamedLocation, error) {
	if !locType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.locationRepo.List(ctx, locType, onlyActive)
}
