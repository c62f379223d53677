package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON strictly decodes a request body into dst and runs its validate
// tags. The returned map carries one message per failing field, keyed by the
// field's json name.
func DecodeJSON(r *http.Request, dst any) (map[string]string, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return nil, err
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, err
	}

	issues := make(map[string]string, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		issues[jsonFieldName(dst, fieldError.StructField())] = validationMessage(fieldError)
	}
	return issues, nil
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Must be greater than " + fieldError.Param()
	case "min":
		return "Must have at least " + fieldError.Param() + " entries"
	case "oneof":
		return "Must be one of: " + fieldError.Param()
	case "email":
		return "Must be a valid email address"
	default:
		return "Invalid value"
	}
}

func jsonFieldName(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return structField
	}
	field, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return structField
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
