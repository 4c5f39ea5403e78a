package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials("user@example.com", "secret"))
	assert.Error(t, ValidateCredentials("", "secret"))
	assert.Error(t, ValidateCredentials("not-an-email", "secret"))
	assert.Error(t, ValidateCredentials("user@example.com", ""))
}

func TestValidateUserFields(t *testing.T) {
	assert.NoError(t, ValidateUserFields("Jane Roe", "jane@example.com", "s3cret"))
	assert.Error(t, ValidateUserFields("", "jane@example.com", "s3cret"))
	assert.Error(t, ValidateUserFields("Jane Roe", "bad email", "s3cret"))
	assert.Error(t, ValidateUserFields("Jane Roe", "jane@example.com", "abc"))
}

func TestValidateEmailRequest(t *testing.T) {
	assert.NoError(t, ValidateEmailRequest(EmailRequest{
		To:      "ops@example.com",
		Subject: "Coverage update",
		Body:    "Your policy was renewed.",
	}))
	assert.Error(t, ValidateEmailRequest(EmailRequest{Subject: "x", Body: "y"}))
	assert.Error(t, ValidateEmailRequest(EmailRequest{To: "ops@example.com", Body: "y"}))
	assert.Error(t, ValidateEmailRequest(EmailRequest{To: "ops@example.com", Subject: "x"}))
}
