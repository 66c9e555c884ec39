package request

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	plzPattern   = regexp.MustCompile(`^[0-9]{5}$`)
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags to gin's validator. It must
// run before the first request is bound.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("plz", validPostalCode)
	})
	return registerErr
}

// validPostalCode accepts a German postal code: exactly five digits.
func validPostalCode(fl validator.FieldLevel) bool {
	return plzPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
