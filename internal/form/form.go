// Package form declares the form structs for every mutating operation and
// validates them before any write is attempted. Validation rules live in
// struct tags; failures come back as a field → message map for inline
// display, and an operation with any failure never reaches the store.
package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Errors maps form field names to validation messages.
type Errors map[string]string

// Any reports whether any field failed validation.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Validate runs struct-tag validation and converts the result into an
// Errors map with user-facing messages.
func Validate(form any) Errors {
	errs := Errors{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var invalid validator.ValidationErrors
	if ok := errorsAs(err, &invalid); !ok {
		errs["_form"] = "Invalid form data"
		return errs
	}

	for _, fe := range invalid {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

// message converts a single validator error into display copy.
func message(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	case "url":
		return "Please enter a valid URL"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be no more than %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return label + " has an invalid value"
	default:
		return label + " is not valid"
	}
}

// labelFor turns a field name like "contact_email" into "Contact email".
func labelFor(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return "Field"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// ParseSortOrder parses a sort-order input, defaulting to 0 when the value
// is blank or not an integer.
func ParseSortOrder(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCheckbox interprets an HTML checkbox value.
func ParseCheckbox(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// trimmed returns the trimmed value for a form key.
func trimmed(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
