package utils

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateEmailRequest checks the notification email payload.
func ValidateEmailRequest(req EmailRequest) error {
	return validation.Errors{
		"to":      validation.Validate(req.To, validation.Required, is.Email),
		"subject": validation.Validate(req.Subject, validation.Required, validation.Length(1, 255)),
		"body":    validation.Validate(req.Body, validation.Required),
	}.Filter()
}

// ValidateCredentials checks a login payload.
func ValidateCredentials(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// ValidateUserFields checks the fields shared by the user records of both
// backends before they reach the storage layer.
func ValidateUserFields(name, email, password string) error {
	return validation.Errors{
		"name":     validation.Validate(name, validation.Required, validation.Length(1, 100)),
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(4, 255)),
	}.Filter()
}
