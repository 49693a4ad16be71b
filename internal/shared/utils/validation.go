package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

const validationFailedMessage = "Geçersiz istek verisi"

func init() {
	// Report JSON field names instead of Go field names in binding errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
	validate.RegisterTagNameFunc(jsonTagName)
}

var validate = validator.New()

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateStruct validates s with go-playground/validator tags.
func ValidateStruct(s any) error {
	return TranslateBindError(validate.Struct(s))
}

// TranslateBindError converts a gin binding or validator error into a
// validation AppError with per-field details. nil stays nil.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
		return errors.NewValidationError(validationFailedMessage, strings.Join(msgs, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewValidationError(validationFailedMessage,
			fmt.Sprintf("%s has invalid type %s", typeErr.Field, typeErr.Value))
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewValidationError(validationFailedMessage, "malformed JSON body")
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}
	return errors.NewValidationError(validationFailedMessage, err.Error())
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt", "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
