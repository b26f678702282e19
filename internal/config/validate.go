package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	// Field is the config key at fault, e.g. "on_collision".
	Field string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validate reports fields by their koanf key so messages match the config file.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}()

// CheckYAMLSyntax reports a ValidationError with the line of the first
// syntax error in data. Empty data is valid.
func CheckYAMLSyntax(data []byte, filePath string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	err := yaml.Unmarshal(data, &node)
	if err == nil {
		return nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{FilePath: filePath, Message: strings.Join(typeErr.Errors, "; ")}
	}

	ve := &ValidationError{FilePath: filePath, Message: err.Error()}
	ve.Line, ve.Message = splitYAMLError(err.Error())
	if ve.Line > 0 {
		ve.Column = 1
	}
	return ve
}

// splitYAMLError splits "yaml: line 5: did not find expected key" into
// 5 and "did not find expected key".
func splitYAMLError(msg string) (int, string) {
	var line int
	if _, err := fmt.Sscanf(msg, "yaml: line %d:", &line); err != nil {
		return 0, strings.TrimPrefix(msg, "yaml: ")
	}
	if _, rest, ok := strings.Cut(strings.TrimPrefix(msg, "yaml: line "), ": "); ok {
		return line, rest
	}
	return line, msg
}

// ValidateConfigValues checks cfg against its validate tags and resolves the
// timezone. Only the first problem is reported.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				FilePath: filePath,
				Field:    fe.Field(),
				Message:  fieldMessage(fe),
			}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if _, err := cfg.Location(); err != nil {
		return &ValidationError{
			FilePath: filePath,
			Field:    "timezone",
			Message:  fmt.Sprintf("unknown timezone %q", cfg.Timezone),
		}
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	}
	return "failed validation: " + fe.Tag()
}
