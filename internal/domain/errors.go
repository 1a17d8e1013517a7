package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnknownDish       = errors.New("plato sin receta registrada")
	ErrUnknownMaterial   = errors.New("materia prima no registrada")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNegativeBalance   = errors.New("saldo negativo detectado")
	ErrBalanceInvariant  = errors.New("saldo inconsistente: disponible != apertura + entradas - salidas")
)

// PartialApplicabilityError indica que una venta o preparación no pudo descontar
// una o más materias primas por falta de registro de stock en la ubicación.
// Las materias que sí tenían registro quedan confirmadas; Missing enumera las que no.
type PartialApplicabilityError struct {
	Missing []int64 // IDs de materia prima sin registro de stock en la ubicación
}

func (e *PartialApplicabilityError) Error() string {
	ids := make([]string, len(e.Missing))
	sorted := append([]int64(nil), e.Missing...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, id := range sorted {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return "materias primas sin registro de stock en la ubicación: " + strings.Join(ids, ", ")
}

// IsPartialApplicability devuelve el error tipado si err lo es (o lo envuelve).
func IsPartialApplicability(err error) (*PartialApplicabilityError, bool) {
	var pe *PartialApplicabilityError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
