package dto

import (
	"github.com/go-playground/validator/v10"
)

// ValidCurrencyCode is the "currency" binding rule: a three-letter uppercase
// code. Codes are not checked against an ISO list because the provider may
// quote currencies outside it.
func ValidCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
