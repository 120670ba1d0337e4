package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/auctions-api/models"
	"github.com/go-playground/validator/v10"
)

// ListingValidator checks catalog requests against the rules declared in
// their `validate` struct tags.
type ListingValidator struct {
	validate *validator.Validate
}

func NewListingValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names, so "ask_price" instead of "AskPrice"
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &ListingValidator{validate: v}
}

// Validate accepts models.CreateListingRequest by value or pointer. When
// fields are given only those struct fields (Go names) are checked.
func (v *ListingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.CreateListingRequest:
		err = v.validateStruct(ctx, &value, fields...)
	case *models.CreateListingRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		err = v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}

	return toFieldError(err)
}

func (v *ListingValidator) validateStruct(ctx context.Context, s any, fields ...string) error {
	if len(fields) == 0 {
		return v.validate.StructCtx(ctx, s)
	}
	return v.validate.StructPartialCtx(ctx, s, fields...)
}

func toFieldError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	return &FieldError{
		Field: first.Field(),
		Rule:  first.Tag(),
		Param: first.Param(),
	}
}
