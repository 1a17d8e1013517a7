package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los repositorios traducen a errores de dominio.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgCodeUniqueViolation
}

// isForeignKeyViolation verifica si un error referencia una fila inexistente,
// por ejemplo una compra contra un proveedor eliminado.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgCodeForeignKeyViolation
}
