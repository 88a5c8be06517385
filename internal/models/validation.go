package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that understands the domain value types.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators teaches v to validate Date fields through their string form,
// so "required" rejects unset dates.
func RegisterValidators(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok {
			return d.String()
		}
		return nil
	}, Date{})
}
