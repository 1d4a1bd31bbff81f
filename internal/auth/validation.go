package auth

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

	// Deliberately permissive: any local part followed by "@" and a
	// non-empty domain. Stricter checks belong to the callers.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)
)

// registerInput carries the registration fields through validation.
// Fields are declared in check order: username, then email, then
// password, so the first reported failure matches that precedence.
type registerInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,loose_email"`
	Password string `validate:"required,min=6"`
	FullName string
}

// newValidator builds a validator with the custom username and email
// rules registered.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}
