// api/util/validation_util.go

package util

import (
	"fmt"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding tags on gin's validator engine.
// Must run once before the router serves traffic.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine: %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("langcode", validLanguageCode)
}

// validLanguageCode accepts BCP-47-ish codes ("en", "de-CH") without trying
// to be a full parser. Case is not checked; handlers normalize to lower.
func validLanguageCode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}

// ValidationErrorMessage renders a binding failure as a short human-readable
// message without leaking struct internals.
func ValidationErrorMessage(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag())
	}
	return "invalid request body"
}
