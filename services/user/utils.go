package user

import (
	"strings"

	"medibook/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VerifyPasswordStrength enforces the minimum password length.
func VerifyPasswordStrength(pw string) error {
	if len(pw) < 8 {
		return utils.NewAppError(utils.KindValidation, "Please enter a strong password", nil)
	}
	return nil
}

// NormalizeEmail lower-cases and trims an address and checks its shape.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", utils.NewAppError(utils.KindValidation, "Enter a valid email", err)
	}
	return email, nil
}
