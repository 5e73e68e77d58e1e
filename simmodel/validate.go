package simmodel

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return IsMailbox(fl.Field().String())
	})
	return v
}

// IsMailbox reports whether addr has the minimal address shape local@domain,
// with non-empty local and domain parts and no whitespace.
func IsMailbox(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" || strings.ContainsAny(addr, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	return !strings.Contains(addr[:at], "@")
}
