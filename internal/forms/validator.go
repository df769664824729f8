package forms

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

// Form error codes.
const (
	CodeRequired  = "required"
	CodeMaxLength = "max_length"
	CodeInvalid   = "invalid"
	CodeNullChars = "null_characters_not_allowed"
)

// tagNoNull rejects strings containing a NUL character.
const tagNoNull = "nonull"

// LoginFormValidator applies the login form field rules declared on models.LoginForm.
type LoginFormValidator struct {
	validate *validator.Validate
}

// NewLoginFormValidator creates a validator that reports fields by their JSON names.
func NewLoginFormValidator() *LoginFormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(tagNoNull, func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), '\x00')
	})
	return &LoginFormValidator{validate: v}
}

// Validate cleans the payload into a LoginForm and checks it.
// The returned FormErrors is nil when the form is valid.
func (v *LoginFormValidator) Validate(payload map[string]any) (*models.LoginForm, models.FormErrors) {
	form := &models.LoginForm{
		Username: strings.TrimSpace(fieldValue(payload, "username")),
		Password: fieldValue(payload, "password"),
	}

	err := v.validate.Struct(form)
	if err == nil {
		return form, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		logger.Log.Errorw("unexpected form validation failure", "error", err)
		return form, models.FormErrors{
			"__all__": {{Message: html.EscapeString(err.Error()), Code: CodeInvalid}},
		}
	}

	problems := make(models.FormErrors, len(verrs))
	for _, fe := range verrs {
		problems[fe.Field()] = append(problems[fe.Field()], translate(fe))
	}
	return form, problems
}

func translate(fe validator.FieldError) models.FormError {
	var out models.FormError

	switch fe.Tag() {
	case "required":
		out = models.FormError{Message: "This field is required.", Code: CodeRequired}
	case tagNoNull:
		out = models.FormError{Message: "Null characters are not allowed.", Code: CodeNullChars}
	case "max":
		s, _ := fe.Value().(string)
		out = models.FormError{
			Message: fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
				fe.Param(), utf8.RuneCountInString(s)),
			Code: CodeMaxLength,
		}
	default:
		out = models.FormError{Message: "Enter a valid value.", Code: CodeInvalid}
	}

	out.Message = html.EscapeString(out.Message)
	return out
}

// fieldValue converts a raw JSON member into the string a form field sees.
// Absent and null members read as empty.
func fieldValue(payload map[string]any, name string) string {
	switch v := payload[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
