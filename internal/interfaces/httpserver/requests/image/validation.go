package image

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// fieldMessages holds the client-facing message for each json field and failed tag.
var fieldMessages = map[string]string{
	"userId.notblank":    "User ID cannot be blank",
	"prompt.notblank":    "Prompt cannot be blank",
	"model.notblank":     "Model cannot be blank",
	"height.required":    "Height cannot be null",
	"width.required":     "Width cannot be null",
	"quality.notblank":   "Quality cannot be blank",
	"style.notblank":     "Style cannot be blank",
	"numImages.required": "Number of images cannot be null",
	"numImages.min":      "Number of images must be at least 1",
	"numImages.max":      "Number of images must be at most 10",
}

// RegisterValidations installs the notblank tag and json field naming on gin's validator.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FieldError is one rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors extracts per-field messages, in struct order, from a binding error.
// The second return value is false when err is not a validation failure.
func FieldErrors(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out, true
}
