// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SupportedLocales lists the site locales accepted by the `locale` tag.
var SupportedLocales = []string{"en", "nl"}

// WorkTypes lists the values accepted by the `worktype` tag.
var WorkTypes = []string{"remote", "local", "hybrid"}

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the marketplace tags registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(requestFieldName)
	_ = v.RegisterValidation("locale", oneOfFold(SupportedLocales))
	_ = v.RegisterValidation("worktype", oneOfFold(WorkTypes))
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// requestFieldName reports fields by the name clients send: json first, then form.
func requestFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		if value == "" {
			return true
		}
		for _, candidate := range allowed {
			if strings.EqualFold(value, candidate) {
				return true
			}
		}
		return false
	}
}
