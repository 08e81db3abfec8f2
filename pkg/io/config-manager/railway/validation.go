package configmanager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
)

// ErrFieldNotSet is returned when a connection field is empty or still holds its placeholder.
var ErrFieldNotSet = errors.New("connection field not set")

// ErrConfigFileNotFound is returned when an explicitly named config file does not
// exist, or when the default search finds none and the environment does not
// provide every field either.
var ErrConfigFileNotFound = errors.New("config file not found")

// FieldError names the first connection field that is not filled in.
type FieldError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s is empty", ErrFieldNotSet, e.Field)
	}

	return fmt.Sprintf("%s: %s still holds the placeholder %s", ErrFieldNotSet, e.Field, e.Value)
}

// Unwrap exposes ErrFieldNotSet for errors.Is.
func (e *FieldError) Unwrap() error {
	return ErrFieldNotSet
}

// Validate checks the fields in canonical order and fails on the first one that
// is blank or equal to its YOUR_<FIELD>_HERE placeholder.
func Validate(params *v1alpha1.Params) error {
	for _, field := range v1alpha1.Fields() {
		value, err := params.Get(field)
		if err != nil {
			return fmt.Errorf("validate %s: %w", field, err)
		}

		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field}
		}

		if value == v1alpha1.Placeholder(field) {
			return &FieldError{Field: field, Value: value}
		}
	}

	return nil
}
