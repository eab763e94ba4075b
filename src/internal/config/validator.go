package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
		isNil bool
	}{
		{"api", c.API, c.API == nil},
		{"workers", c.Workers, c.Workers == nil},
		{"log", c.Log, c.Log == nil},
	}

	for _, s := range sections {
		if s.isNil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: s.name,
				Message:   fmt.Sprintf("configuration must contain '%s' section", s.name),
			})
			continue
		}
		if err := validate.Struct(s.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, s.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	validationErrors = append(validationErrors, c.validatePorts()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validatePorts checks that no two listeners share an address.
func (c *Config) validatePorts() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Workers.PrimaryPort == c.Workers.SecondaryPort {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "workers.secondary_port",
			Message:   fmt.Sprintf("must differ from primary_port (%d)", c.Workers.PrimaryPort),
		})
	}

	if c.API.BindAddress == c.Workers.BindAddress {
		for _, p := range []struct {
			name string
			port uint16
		}{
			{"primary_port", c.Workers.PrimaryPort},
			{"secondary_port", c.Workers.SecondaryPort},
		} {
			if p.port == c.API.Port {
				validationErrors = append(validationErrors, ValidationError{
					FieldPath: "api.port",
					Message:   fmt.Sprintf("must differ from workers.%s (%d)", p.name, p.port),
				})
			}
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
