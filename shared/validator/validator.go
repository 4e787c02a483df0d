package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerTimezoneValidation(field val.FieldLevel) bool {
	zone, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return timezone.Valid(zone)
}

func registerLayoutValidation(field val.FieldLevel) bool {
	name, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, known := constant.Layouts[name]

	return known
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("timezone", registerTimezoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("layout", registerLayoutValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
