package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NotBlankTag rejects strings that are empty after trimming whitespace
const NotBlankTag = "notblank"

// NotBlank implements the notblank rule. Non-string fields always pass.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return true
}

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(NotBlankTag, NotBlank)
}

// RegisterWithGin registers the custom rules on gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return Register(v)
}
