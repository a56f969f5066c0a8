package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/shared/preview"
	"pakt/shared/timezone"
	"reflect"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var customTags = map[string]val.Func{
	"empty":     isEmpty,
	"mimetypes": isAllowedMimetype,
	"timezone":  isTimezone,
	"password":  isPassword,
}

func isEmpty(field val.FieldLevel) bool {
	return field.Field().IsZero()
}

// isAllowedMimetype checks the media type of a data URL against the space separated param.
func isAllowedMimetype(field val.FieldLevel) bool {
	contentType := preview.ContentType(field.Field().String())
	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// isTimezone accepts IANA zone names and the "undefined" placeholder,
// which the preference resolves to the detected zone.
func isTimezone(field val.FieldLevel) bool {
	value := field.Field().String()

	return value == constant.UndefinedValue || timezone.Valid(value)
}

func isPassword(field val.FieldLevel) bool {
	return passwordMessage(field.Field().String()) == ""
}

// jsonName reports fields by their JSON key so messages match the request body.
// An empty result keeps the Go field name.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	for tag, fn := range customTags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body from r into data and validates the result.
// An empty body is reported as such rather than as a decode failure.
func Validate[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)

	switch {
	case errors.Is(err, io.EOF):
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	case err != nil:
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
