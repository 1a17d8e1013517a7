package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/catalog"
	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// CatalogHandler datos de referencia: materias primas, platos, proveedores y ubicaciones.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListMaterials godoc
// @Summary      Listar materias primas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        include_deleted  query  bool  false  "incluir materias dadas de baja"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/materials [get]
func (h *CatalogHandler) ListMaterials(c *fiber.Ctx) error {
	onlyActive := !c.QueryBool("include_deleted")
	materials, err := h.uc.ListMaterials(c.Context(), onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(materials), "materials": materials})
}

// MaterialCategories godoc
// @Summary      Categorías de materias primas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/materials/categories [get]
func (h *CatalogHandler) MaterialCategories(c *fiber.Ctx) error {
	categories, err := h.uc.MaterialCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// CreateMaterial godoc
// @Summary      Alta de materia prima
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RawMaterialRequest  true  "nombre, categoría y unidad"
// @Success      201   {object}  map[string]interface{}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *CatalogHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.RawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.CreateMaterial(c.Context(), in.Name, in.Category, in.Metric)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": m.ID, "name": m.Name})
}

// DeleteMaterial godoc
// @Summary      Baja lógica de materia prima
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id de la materia prima"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *CatalogHandler) DeleteMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteMaterial(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "materia prima dada de baja"})
}

// ListDishes godoc
// @Summary      Listar platos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dishes [get]
func (h *CatalogHandler) ListDishes(c *fiber.Ctx) error {
	dishes, err := h.uc.ListDishes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(dishes), "dishes": dishes})
}

// DishRecipe godoc
// @Summary      Receta de un plato
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del plato"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dishes/{id}/recipe [get]
func (h *CatalogHandler) DishRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	rows, err := h.uc.DishRecipe(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"dish_id": id, "recipe": rows})
}

// ListVendors godoc
// @Summary      Listar proveedores
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        include_inactive  query  bool  false  "incluir proveedores inactivos"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/vendors [get]
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	onlyActive := !c.QueryBool("include_inactive")
	vendors, err := h.uc.ListVendors(c.Context(), onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(vendors), "vendors": vendors})
}

// ListLocations godoc
// @Summary      Listar ubicaciones de un tipo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true  "storeroom | kitchen | restaurant"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.uc.ListLocations(c.Context(), entity.LocationType(c.Query("type")), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(locations), "locations": locations})
}
