package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translateError maps driver and gorm errors onto the shared domain errors.
// Errors it does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// the PostgreSQL error carries the constraint, so it is checked first
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind := classifySQLState(pgErr.Code); kind != nil {
			return kind.Wrap(err, pgDetail(pgErr))
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists.Wrap(err, err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidField):
		return shared.ErrInvalidInput.Wrap(err, err.Error())
	}
	return err
}

// SQLSTATE codes from PostgreSQL's errcodes table
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
	sqlClassData       = "22"
)

// classifySQLState returns the domain error for a PostgreSQL SQLSTATE, or
// nil for states that are not the caller's fault.
func classifySQLState(code string) *shared.DomainError {
	switch {
	case code == sqlStateUnique:
		return shared.ErrAlreadyExists
	case code == sqlStateNotNull, code == sqlStateForeignKey, code == sqlStateCheck,
		strings.HasPrefix(code, sqlClassData):
		return shared.ErrInvalidInput
	}
	return nil
}

func pgDetail(e *pgconn.PgError) string {
	if e.ConstraintName == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.ConstraintName)
}
