package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrCapacityExceeded = errors.New("venue capacity exceeded")
)

// isForeignKeyViolation recognises a broken eventos.recinto_id reference on
// both supported stores.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
