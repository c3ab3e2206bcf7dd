package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/go-playground/validator/v10"
)

// Custom tag names.
const (
	TagResourceKind = "resource_kind"
	TagBookmarkType = "bookmark_type"
)

// RequestValidator implements [Validator] with go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom rules
// registered. Field names in errors come from json tags when present.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})

	// registration of a well-formed tag cannot fail
	_ = v.RegisterValidation(TagResourceKind, validResourceKind)
	_ = v.RegisterValidation(TagBookmarkType, validResourceKind)

	return &RequestValidator{validate: v}
}

func validResourceKind(fl validator.FieldLevel) bool {
	return models.ResourceKind(fl.Field().String()).Valid()
}

// Validate checks obj against its struct tags. When fields are given only
// those (Go field names) are checked.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = r.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in the %s format", field, fe.Param())
	case TagResourceKind, TagBookmarkType:
		return field + " must be one of: paper, note, syllabus"
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
