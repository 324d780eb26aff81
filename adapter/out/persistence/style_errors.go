package persistence

import (
	"database/sql"
	"errors"

	"style_server/core/domain"
)

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return errors.Join(domain.ErrDuplicate, err)
	default:
		return err
	}
}
