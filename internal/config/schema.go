package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Environment variable names read by Load.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvCORSOrigins = "BACKEND_CORS_ORIGINS"
	EnvLogLevel    = "LOG_LEVEL"
)

// Field describes one configuration variable.
type Field struct {
	// Name is the exact environment variable name.
	Name string
	// Required fields with no value make construction fail.
	Required bool
	// Default is used when an optional field has no value.
	Default string
	// Validate is a validator tag applied to non-empty values.
	Validate string
}

// schema enumerates every variable the settings object is built from.
// Order matters: missing fields are reported in this order.
var schema = []Field{
	{Name: EnvDatabaseURL, Required: true},
	{Name: EnvCORSOrigins, Default: "[]"},
	{Name: EnvLogLevel, Default: "info", Validate: "oneof=debug info warn error"},
}

// Schema returns a copy of the fields Load reads, in declaration order.
func Schema() []Field {
	fields := make([]Field, len(schema))
	copy(fields, schema)
	return fields
}

var validate = validator.New()

// resolve applies the schema to raw values. It returns the effective value
// of every field and collects every problem before reporting.
func resolve(values map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(schema))
	var missing []string
	var problems []error

	for _, f := range schema {
		value := values[f.Name]

		if value == "" {
			if f.Required {
				missing = append(missing, f.Name)
				continue
			}
			value = f.Default
		}

		if f.Validate != "" {
			if err := validate.Var(value, f.Validate); err != nil {
				problems = append(problems, &InvalidFieldError{
					Field: f.Name,
					Value: value,
					Rule:  f.Validate,
					Err:   err,
				})
				continue
			}
		}

		resolved[f.Name] = value
	}

	if len(missing) > 0 {
		problems = append([]error{&MissingFieldsError{Fields: missing}}, problems...)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return resolved, nil
}
