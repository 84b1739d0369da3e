package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this student"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConstraintError represents an integrity violation reported by the storage layer
// (unique, foreign key, not-null or check constraint).
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation (%s): %s", e.Constraint, e.Message)
	}
	return fmt.Sprintf("constraint violation: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrStudentNotFound    = &NotFoundError{Entity: "student"}
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrEnrollmentNotFound = &NotFoundError{Entity: "enrollment"}
)

// ErrEnrollmentExists is returned when a student is already attending the course
var ErrEnrollmentExists = &AlreadyExistsError{Entity: "enrollment", Context: "for this student and course"}

// ErrAmbiguousName is returned when a student or course name resolves to several rows
var ErrAmbiguousName = &ValidationError{Message: "student or course name matches more than one record"}

// Seeding Errors
var (
	ErrNotEnoughNames      = errors.New("requested student count exceeds the name pool")
	ErrTooManyGroups       = errors.New("requested group count exceeds the group name space")
	ErrNotEnoughCourses    = errors.New("requested course count exceeds the course catalogue")
	ErrStudentNameTokens   = &ValidationError{Field: "student_name", Message: "must consist of exactly a first and a last name"}
	ErrNegativeGroupLimit  = &ValidationError{Field: "n", Message: "must not be negative"}
	ErrSessionSecretNotSet = &ConfigurationError{Message: "SESSION_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConstraint checks if an error is a ConstraintError
func IsConstraint(err error) bool {
	var constraintErr *ConstraintError
	return errors.As(err, &constraintErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsBadRequest reports whether the error is caused by the client. It takes
// precedence over IsNotFound when a storage constraint wraps a missing referent.
func IsBadRequest(err error) bool {
	return IsValidation(err) || IsConstraint(err) || IsAlreadyExists(err)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConstraintError creates a new ConstraintError
func NewConstraintError(constraint, message string) error {
	return &ConstraintError{Constraint: constraint, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
