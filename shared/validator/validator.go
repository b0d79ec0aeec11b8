package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"libraryhub/shared/constant"
	"libraryhub/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// layoutValidation accepts a string field that parses with any of layouts.
func layoutValidation(layouts ...string) val.Func {
	return func(field val.FieldLevel) bool {
		value, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, layout := range layouts {
			if _, err := time.Parse(layout, value); err == nil {
				return true
			}
		}

		return false
	}
}

// jsonFieldName reports fields by their JSON key so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	default:
		return name
	}
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"date":  layoutValidation(constant.DayFormat),
		"clock": layoutValidation(constant.ClockFormat, constant.DateFormat),
	}

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %q validation: %v", tag, err))
		}
	}

	return v
}

// Validate decodes a JSON body from r into data and validates it. Both decode and
// validation failures come back as bad request failures.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct checks the `validate` tags of data and reports the first violation.
func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
