package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// names must contain something besides whitespace
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// report violations under the json field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors maps a violated field (by its json name) to the failed rule.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for f, rule := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", f, rule))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the struct tags on a DTO and returns nil when it is valid.
func Validate(dto any) FieldErrors {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	fe := FieldErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			rule := e.Tag()
			if e.Param() != "" {
				rule += "=" + e.Param()
			}
			fe[e.Field()] = rule
		}
		return fe
	}
	fe["_struct"] = err.Error()
	return fe
}
