package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"term_unit": func(fl validator.FieldLevel) bool {
			_, ok := LookupTermUnit(fl.Field().String())
			return ok
		},
		"product_status": func(fl validator.FieldLevel) bool {
			return ProductStatus(fl.Field().String()).IsValid()
		},
		"scenario_type": func(fl validator.FieldLevel) bool {
			return ScenarioType(fl.Field().String()).IsValid()
		},
		"scenario_subtype": func(fl validator.FieldLevel) bool {
			return ScenarioSubType(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}
