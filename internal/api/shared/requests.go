package shared

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/forum-api/internal/domain"
)

// Validate is the shared validator instance. Field names in its errors are
// the JSON names, and it knows the "question_category" tag.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("question_category", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})
	if err != nil {
		// ALLOW-PANIC: registration only fails on an empty tag or nil func
		panic(err)
	}

	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the shared validator.
func ValidateRequest(v interface{}) error {
	return Validate.Struct(v)
}
