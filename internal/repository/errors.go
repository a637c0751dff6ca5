package repository

import (
	"database/sql"
	"errors"
	"strings"

	"travel-planner/internal/apperror"
	"travel-planner/internal/util"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateError : приводит ошибки драйвера к apperror, прочие логирует как внутренние
func translateError(message string, notFound string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.New(apperror.KindNotFound, notFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperror.Wrap(apperror.KindConflict, conflictMessage(pqErr.Constraint), err)
		case pqForeignKeyViolation:
			return apperror.Wrap(apperror.KindInvalid, "referenced entity does not exist", err)
		}
	}

	return apperror.Wrap(apperror.KindInternal, message, util.LogError(message, err))
}

func conflictMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "phone"):
		return "phone number already exists"
	case strings.Contains(constraint, "pkey") && strings.Contains(constraint, "participant"):
		return "already enrolled in this trip"
	default:
		return "username or email already exists"
	}
}

func requireAffected(result sql.Result, message, notFound string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, message, util.LogError(message, err))
	}
	if affected == 0 {
		return apperror.New(apperror.KindNotFound, notFound)
	}
	return nil
}
