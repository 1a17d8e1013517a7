package clock

import (
	"fmt"
	"time"
)

// Clock abstrae la fuente de tiempo de la operación. Las fechas de negocio
// (consumos, compras, traslados) se calculan siempre en la zona horaria
// configurada, no en la del host.
type Clock interface {
	Now() time.Time
	// Today devuelve la fecha de negocio actual truncada a medianoche (zona operativa).
	Today() time.Time
}

// TZClock implementación real sobre una *time.Location.
type TZClock struct {
	loc *time.Location
}

// New construye el reloj de la operación a partir del nombre de zona (ej. "Asia/Kolkata").
func New(timezone string) (*TZClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("cargar zona horaria %q: %w", timezone, err)
	}
	return &TZClock{loc: loc}, nil
}

func (c *TZClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *TZClock) Today() time.Time {
	return DateOnly(c.Now())
}

// DateOnly trunca un instante a su fecha (medianoche, misma zona).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
