package form

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

// ValidationError lists field violations of a request. It matches gerr.ErrInvalidRequest.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "Validation message: " + strings.Join(e.Violations, " ")
}

func (e *ValidationError) Unwrap() error {
	return gerr.ErrInvalidRequest
}

// Analog validation.ValidateStruct ozzy validation but returns
// all field violations at once in a ValidationError.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	var violations []string

	for _, rule := range rules {
		err := validation.ValidateStruct(structField, rule)
		if err == nil {
			continue
		}
		var ve validation.Errors
		if !errors.As(err, &ve) {
			return err
		}
		for key, value := range ve {
			violations = append(violations, formatErrMsg(key+": "+value.Error()))
		}
	}
	if len(violations) == 0 {
		return nil
	}
	sort.Strings(violations)
	return &ValidationError{Violations: violations}
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
