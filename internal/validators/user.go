package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"newsroom/models"
)

// Field names reported by the user validator.
const (
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPlainPassword = "plainPassword"
)

// UserValidator validates user registration, login and edit payloads.
type UserValidator struct{}

func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// Validate checks one of models.RegisterInput, models.UserEditInput or
// models.LoginInput depending on the dynamic type of data.
func (v *UserValidator) Validate(_ context.Context, data any, fields ...string) error {
	verr := NewValidationError()

	switch input := data.(type) {
	case models.RegisterInput:
		for _, field := range fieldsOrAll(fields, FieldUsername, FieldEmail, FieldPlainPassword) {
			switch field {
			case FieldUsername:
				checkUsername(verr, input.Username)
			case FieldEmail:
				checkEmail(verr, input.Email)
			case FieldPlainPassword:
				checkPassword(verr, input.PlainPassword)
			}
		}
	case models.UserEditInput:
		for _, field := range fieldsOrAll(fields, FieldUsername, FieldEmail) {
			switch field {
			case FieldUsername:
				checkUsername(verr, input.Username)
			case FieldEmail:
				checkEmail(verr, input.Email)
			}
		}
	case models.LoginInput:
		for _, field := range fieldsOrAll(fields, FieldEmail, FieldPlainPassword) {
			switch field {
			case FieldEmail:
				checkEmail(verr, input.Email)
			case FieldPlainPassword:
				checkPassword(verr, input.PlainPassword)
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func checkUsername(verr *ValidationError, username string) {
	if strings.TrimSpace(username) == "" {
		verr.Add(FieldUsername, "This value should not be blank.")
	}
}

func checkEmail(verr *ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		verr.Add(FieldEmail, "This value should not be blank.")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		verr.Add(FieldEmail, "This value is not a valid email address.")
	}
}

func checkPassword(verr *ValidationError, password string) {
	if password == "" {
		verr.Add(FieldPlainPassword, "This value should not be blank.")
	}
}
