package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidField    = errors.New("invalid field")
)

// FieldError describes the first validation rule a value failed.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", e.Field, e.Param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field, e.Param)
	case "uppercase":
		return fmt.Sprintf("%s must be upper case", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s failed on %q", e.Field, e.Rule)
	}
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
