package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var classNamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Validator wraps go-playground/validator and converts rule failures into
// per-field messages keyed by the form field name.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report errors under the form tag name so templates can match
	// messages to inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("classname", func(fl validator.FieldLevel) bool {
		return classNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	return &Validator{v: v}
}

// Check validates a bound form. It returns nil when every rule passes,
// otherwise a map of field name to the first failing rule's message.
func (val *Validator) Check(form any) map[string]string {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if _, seen := fieldErrors[fe.Field()]; !seen {
				fieldErrors[fe.Field()] = message(fe)
			}
		}
		return fieldErrors
	}

	fieldErrors["form"] = "Invalid form submission."
	return fieldErrors
}

// message converts a single rule failure into the text shown next to the
// field.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label(fe.Field()) + " is required."
	case "email":
		return "A valid email is required."
	case "classname":
		return "Classification name must contain only letters or numbers (no spaces or special characters)."
	case "strongpassword":
		return "Password does not meet requirements (12+ characters with upper, lower, number, and symbol)."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", label(fe.Field()), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label(fe.Field()), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters.", label(fe.Field()), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label(fe.Field()), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s).", label(fe.Field()), fe.Tag())
	}
}

// label turns a form field name like "account_firstname" into "First name".
var labels = map[string]string{
	"account_firstname":   "First name",
	"account_lastname":    "Last name",
	"account_email":       "Email",
	"account_password":    "Password",
	"account_id":          "Account",
	"classification_name": "Classification name",
	"classification_id":   "Classification",
	"inv_make":            "Make",
	"inv_model":           "Model",
	"inv_year":            "Year",
	"inv_description":     "Description",
	"inv_image":           "Image path",
	"inv_thumbnail":       "Thumbnail path",
	"inv_price":           "Price",
	"inv_miles":           "Mileage",
	"inv_color":           "Color",
	"review_text":         "Review",
	"review_rating":       "Rating",
	"review_id":           "Review",
	"inventory_id":        "Vehicle",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// isStrongPassword enforces the registration password policy: at least 12
// characters with one lowercase, one uppercase, one digit, and one symbol.
func isStrongPassword(s string) bool {
	if len(s) < 12 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
