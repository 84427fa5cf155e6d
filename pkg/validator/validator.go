// Package validator adapts go-playground/validator, the engine behind gin's
// binding tags, to the API's field error format.
package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-directory/pkg/errors"
)

var registerOnce sync.Once

// RegisterJSONTagNames makes validation errors report the JSON field name
// (userEmail) instead of the Go field name (UserEmail).
func RegisterJSONTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// FieldErrors translates a binding error into field errors. It returns nil
// when err is not a validation or decoding problem.
func FieldErrors(err error) []errors.FieldError {
	var verrs playground.ValidationErrors
	if stderrors.As(err, &verrs) {
		out := make([]errors.FieldError, 0, len(verrs))
		for _, e := range verrs {
			out = append(out, errors.FieldError{
				Field:   e.Field(),
				Message: message(e),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return []errors.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
		}}
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) || stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return []errors.FieldError{{
			Field:   "body",
			Message: "request body must be valid JSON",
		}}
	}

	return nil
}

func message(e playground.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		if e.Kind() == reflect.String {
			return field + " must be at least " + e.Param() + " characters"
		}
		return field + " must be at least " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}
