package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "students-api/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes and classes the service layer reacts to.
const (
	integrityViolationClass = "23"
	foreignKeyViolation     = "23503"
	uniqueViolation         = "23505"
	cardinalityViolation    = "21000"
)

const (
	studentsTable       = "students"
	studentCoursesTable = "student_courses"
)

// translateStorageError turns Postgres errors caused by the request into typed
// application errors. Anything else is returned unchanged.
//
// An unknown group_id on a student insert wraps ErrGroupNotFound and a second
// enrollment into the same course wraps ErrEnrollmentExists. Both remain
// constraint errors. A name resolving to several rows becomes ErrAmbiguousName.
func translateStorageError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == cardinalityViolation {
		return apperrors.ErrAmbiguousName
	}
	if !strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return err
	}

	constraintErr := apperrors.NewConstraintError(pgErr.ConstraintName, pgErr.Message)
	switch {
	case pgErr.Code == foreignKeyViolation && pgErr.TableName == studentsTable:
		return fmt.Errorf("%w: %w", constraintErr, apperrors.ErrGroupNotFound)
	case pgErr.Code == uniqueViolation && pgErr.TableName == studentCoursesTable:
		return fmt.Errorf("%w: %w", apperrors.ErrEnrollmentExists, constraintErr)
	}
	return constraintErr
}
