package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validate tags of a request and converts failures to a ValidationError.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &apperrors.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe), fieldMessage(fe))
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ReplaceAll(ns, "AuditInput.", "")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func statusOrDefault(s *int) int {
	if s == nil {
		return models.StatusActive
	}
	return *s
}

func applyStatusFilter(q *gorm.DB, column string, status *int) *gorm.DB {
	if status == nil {
		return q
	}
	return q.Where(column+" = ?", *status)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func rowExists(tx *gorm.DB, model any, query string, args ...any) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// requireRef fails with a ReferenceError when no row of model has the given id.
func requireRef(tx *gorm.DB, model any, id int, what string) error {
	ok, err := rowExists(tx, model, "id = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Reference("%s %d does not exist", what, id)
	}
	return nil
}

// firstByID loads one row and turns a miss into a NotFound error.
func firstByID[T any](tx *gorm.DB, id int, what string) (*T, error) {
	var row T
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("%s %d not found", what, id)
		}
		return nil, err
	}
	return &row, nil
}

// ensureUnique returns a ConflictError when another row (not excludeID) already has value in column.
func ensureUnique(tx *gorm.DB, model any, column, value string, excludeID int, scope map[string]any) error {
	q := tx.Model(model).Where("LOWER("+column+") = LOWER(?)", value)
	for col, v := range scope {
		q = q.Where(col+" = ?", v)
	}
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return apperrors.Conflict("%s %q is already in use", column, value)
	}
	return nil
}
