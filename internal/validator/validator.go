// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex matches exchange ticker symbols like AAPL, GOOG, or BRK.A.
// Symbols are case-sensitive identity keys, so lowercase is rejected rather
// than normalized.
var tickerRegex = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// usernameRegex keeps usernames to a safe shell of characters since they key
// the persisted holdings rows.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{3,32}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", validateTicker)
		_ = v.RegisterValidation("username", validateUsername)
	}
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
