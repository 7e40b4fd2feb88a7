package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/enigma/pkg/hashing"
	"github.com/idelchi/enigma/pkg/salt"
)

// register adds the custom validation tags used by Config.
func register(validate *validator.Validate) error {
	custom := map[string]validator.Func{
		"exclusive": validateExclusive,
		"algorithm": validateAlgorithm,
		"charset":   validateCharset,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validation: %w", tag, err)
		}
	}

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()
	otherField := fl.Parent().FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// validateAlgorithm accepts the names registered with the hash engine.
func validateAlgorithm(fl validator.FieldLevel) bool {
	return hashing.IsSupported(hashing.Algorithm(fl.Field().String()))
}

func validateCharset(fl validator.FieldLevel) bool {
	_, ok := salt.Charset(fl.Field().String()).Alphabet()

	return ok
}
