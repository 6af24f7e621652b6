// Package validator provides a custom Validator type for accumulating
// field-level validation errors and returning them as a map.
// Rules are declared as go-playground/validator struct tags; this package
// turns their failures into client-facing messages keyed by JSON field name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// engine is shared by every Validator. It caches struct metadata and is
// safe for concurrent use.
var engine = newEngine()

func newEngine() *playground.Validate {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report fields by their JSON name so errors line up with the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(req.ID != nil, "id", "must be provided")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Struct checks s against its `validate` struct tags and records one
// message per failing field.
func (v *Validator) Struct(s any) {
	v.collect("", engine.Struct(s))
}

// Var checks a single value against tag and records a failure under key.
//
//	v.Var("published_date", year, "gt=2000")
func (v *Validator) Var(key string, value any, tag string) {
	v.collect(key, engine.Var(value, tag))
}

func (v *Validator) collect(key string, err error) {
	if err == nil {
		return
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError means a programming mistake, not bad input.
		panic(err)
	}

	for _, fe := range fieldErrs {
		name := key
		if name == "" {
			name = fe.Field()
		}
		v.AddError(name, message(fe))
	}
}

// message renders a failed rule the way clients see it.
func message(fe playground.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not be more than %s characters long", fe.Param())
		}
		return fmt.Sprintf("must not be more than %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
