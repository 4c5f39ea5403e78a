package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailRequest is the payload of the notification email endpoint.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendNotificationEmail delivers a plain-text notification through the
// SMTP server configured in the environment.
func SendNotificationEmail(req EmailRequest) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", req.Subject)
	m.SetBody("text/plain", req.Body)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	d := gomail.NewDialer(smtpHost, smtpPort, fromEmail, smtpPass)
	return d.DialAndSend(m)
}
