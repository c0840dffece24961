package wizard

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/gosimple/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report failures under the payload field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("slugfmt", func(fl validator.FieldLevel) bool {
		return slug.IsSlug(fl.Field().String())
	})

	return v
}

// ValidateForm decodes the payload's field subset into the given form
// struct and validates it, returning field-level failures. It never
// panics; decode errors surface as field errors too.
func ValidateForm(payload Payload, form any) []FieldError {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           form,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	if err := decoder.Decode(map[string]any(payload)); err != nil {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	err = validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, verr := range verrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   verr.Field(),
			Message: describeFailure(verr),
		})
	}

	return fieldErrs
}

func describeFailure(verr validator.FieldError) string {
	switch verr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "e164":
		return "Must be a valid phone number in international format"
	case "url":
		return "Must be a valid URL"
	case "slugfmt":
		return "Only lowercase letters, numbers and hyphens are allowed"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", verr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", verr.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", verr.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", verr.Param())
	case "gtefield":
		return "Must not be lower than the minimum"
	default:
		return fmt.Sprintf("Failed the '%s' rule", verr.Tag())
	}
}
