package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf key, so messages name the same
// path a YAML profile or APP_ variable would use.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}()

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config validation failed:\n  " + strings.Join(e.Problems, "\n  ")
}

// Validate checks the configuration. The service must not start when it
// fails; the error is a *ValidationError unless validation itself broke.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, formatFieldError(fe))
	}

	return &ValidationError{Problems: problems}
}

var tagMessages = map[string]string{
	"required":    "%s is required",
	"required_if": "%s is required when %s",
	"min":         "%s must be at least %s",
	"max":         "%s must be at most %s",
	"oneof":       "%s must be one of: %s",
	"url":         "%s must be a valid URL",
	"dir":         "%s must be an existing directory",
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	format, ok := tagMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}

	if strings.Count(format, "%s") == 1 {
		return fmt.Sprintf(format, field)
	}

	return fmt.Sprintf(format, field, e.Param())
}

// formatFieldPath turns "Config.api.not_found_status" into
// "api.not_found_status".
func formatFieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		path = namespace
	}

	return strings.ToLower(path)
}
