// Package validation checks palette and configuration structs using go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/harmony"
)

// ErrValidation is matched by every *Error via errors.Is.
var ErrValidation = errors.New("validation failed")

// Error lists the fields that failed validation with a message for each.
type Error struct {
	Fields map[string]string
}

// Error implements the error interface. Fields are listed in name order.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap returns ErrValidation.
func (e *Error) Unwrap() error {
	return ErrValidation
}

// Validator wraps go-playground/validator with the colour rules registered.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the hexcolor6 and harmonytype rules.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json or yaml name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "yaml"} {
			name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		_, err := colour.ParseHex(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("harmonytype", func(fl validator.FieldLevel) bool {
		return harmony.Type(fl.Field().String()).IsValid()
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns an *Error for rule failures.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[fieldPath(e)] = friendlyMessage(e)
	}
	return &Error{Fields: fields}
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "Palette.colors[1]" becomes "colors[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "hexcolor6":
		return "must be a 6-digit hex color such as #3b82f6"
	case "harmonytype":
		return "must be a known harmony type"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s entries", e.Param())
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must not have more than %s entries", e.Param())
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must not exceed " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
