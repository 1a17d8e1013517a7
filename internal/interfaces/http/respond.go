package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/dto"
	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// parseLocation arma la ubicación desde los campos crudos del request.
func parseLocation(locType string, id int64) (entity.Location, bool) {
	loc := entity.Location{Type: entity.LocationType(locType), ID: id}
	return loc, loc.Valid()
}

// parseDate interpreta fechas de negocio "YYYY-MM-DD"; vacío = zero time
// (el caso de uso la reemplaza por la fecha actual).
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// domainError mapea los errores centinela del dominio a la respuesta HTTP.
// Devuelve false si el error no es de dominio (el caller responde 500).
func domainError(c *fiber.Ctx, err error) (bool, error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnknownMaterial):
		return true, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_MATERIAL", Message: "materia prima no encontrada"})
	case errors.Is(err, domain.ErrUnknownDish):
		return true, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_DISH", Message: "plato no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return true, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return true, c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDuplicate):
		return true, c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return true, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return true, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return false, nil
}

// respondError responde el error de dominio o cae a 500.
func respondError(c *fiber.Ctx, err error) error {
	if handled, resp := domainError(c, err); handled {
		return resp
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
