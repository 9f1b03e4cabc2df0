// Package validation holds the named field validators shared by the booking,
// refund and admin forms.
package validation

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	tagHangul = "hangul"
	tagDigits = "digits"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Ошибки регистрации тут возможны только при пустом теге - паникуем сразу при старте
	if err := v.RegisterValidation(tagHangul, isHangul); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(tagDigits, isDigits); err != nil {
		panic(err)
	}

	return v
}

func isHangul(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.Is(unicode.Hangul, r) {
			return false
		}
	}
	return true
}

func isDigits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsBoundedScript reports whether s is non-empty, at most maxLen characters
// (runes, not bytes) and written in Hangul only. No spaces, digits or Latin.
func IsBoundedScript(s string, maxLen int) bool {
	return validate.Var(s, fmt.Sprintf("required,max=%d,%s", maxLen, tagHangul)) == nil
}

// IsDigitsOnly reports whether s is 1..maxLen ASCII digits
func IsDigitsOnly(s string, maxLen int) bool {
	return validate.Var(s, fmt.Sprintf("required,max=%d,%s", maxLen, tagDigits)) == nil
}

// InRange reports whether n is within [min, max]
func InRange(n, min, max int) bool {
	return validate.Var(n, fmt.Sprintf("min=%d,max=%d", min, max)) == nil
}
