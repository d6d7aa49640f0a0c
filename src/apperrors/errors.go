package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrValidation indicates a missing or malformed field.
	ErrValidation = errors.New("validation failed")
	// ErrReference indicates a foreign key value with no matching row.
	ErrReference = errors.New("referenced record not found")
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates blocking dependents or a duplicate value.
	ErrConflict = errors.New("conflict")
	// ErrIntegrity indicates an aggregate write failed part-way and was rolled back.
	ErrIntegrity = errors.New("aggregate write failed")
	// ErrUnauthorized indicates rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Add appends a field message and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// OrNil returns nil when no field was recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func Validation(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func Reference(format string, args ...any) error {
	return errors.Join(ErrReference, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...any) error {
	return errors.Join(ErrNotFound, fmt.Errorf(format, args...))
}

func Conflict(format string, args ...any) error {
	return errors.Join(ErrConflict, fmt.Errorf(format, args...))
}

func Unauthorized(message string) error {
	return errors.Join(ErrUnauthorized, errors.New(message))
}

// Integrity tags a statement failure inside a multi-row write.
func Integrity(op string, err error) error {
	return errors.Join(ErrIntegrity, fmt.Errorf("%s: %w", op, err))
}

// IsDomain reports whether err already belongs to the taxonomy.
func IsDomain(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrReference) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrIntegrity) ||
		errors.Is(err, ErrUnauthorized)
}

// MapError translates gorm and postgres failures into the taxonomy. Unknown errors pass through.
func MapError(err error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrReference, err)
	case errors.Is(err, context.DeadlineExceeded):
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return errors.Join(ErrConflict, err)
		case "23503": // foreign_key_violation
			return errors.Join(ErrReference, err)
		}
	}
	return err
}
