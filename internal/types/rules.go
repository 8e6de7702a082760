package types

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/width"
)

var postalCodePattern = regexp.MustCompile(`^\d{3}-?\d{4}$`)

// RegisterRules names validation failures after the form tag and installs
// the custom rules used by the forms in this package
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v.RegisterValidation("jppostal", func(fl validator.FieldLevel) bool {
		return postalCodePattern.MatchString(NormalizeDigits(fl.Field().String()))
	})
}

var dashes = strings.NewReplacer("ー", "-", "−", "-", "‐", "-")

// NormalizeDigits folds full-width digits and dashes to ASCII
func NormalizeDigits(s string) string {
	return width.Narrow.String(dashes.Replace(strings.TrimSpace(s)))
}
