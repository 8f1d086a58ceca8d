// Package validation checks transfer objects against their `validate` struct
// tags and reports failures as invalid input.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"backoffice/core/server"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the names callers submit: JSON for payloads,
	// mapstructure keys for configuration.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Struct validates v. Every failing field is listed in one error wrapping
// server.ErrInvalidInput.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", server.ErrInvalidInput, err)
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fieldPath(fe) + " " + message(fe)
	}
	return fmt.Errorf("%w: %s", server.ErrInvalidInput, strings.Join(msgs, "; "))
}

// fieldPath drops the root struct name: "PairOrder.buy.quantity" -> "buy.quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must not exceed " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	}
	return "failed " + fe.Tag() + " validation"
}
