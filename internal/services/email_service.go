package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_NOTIFICATIONS_FROM_EMAIL")
	fromName := os.Getenv("SENDGRID_FROM_NAME")

	client := sendgrid.NewSendClient(apiKey)

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendWelcomeEmail greets a newly registered user
func (s *EmailService) SendWelcomeEmail(userEmail, userName string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(userName, userEmail)
	subject := "Welcome to Khisha"
	plainContent := fmt.Sprintf("Hello %s, your Khisha account is ready. Start by logging today's journal entry or setting up your first reminder.", userName)
	htmlContent := fmt.Sprintf("<p>Hello %s,</p><p>Your Khisha account is ready. Start by logging today's journal entry or setting up your first reminder.</p>", userName)

	message := mail.NewSingleEmail(from, subject, to, plainContent, htmlContent)
	response, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send welcome email to %s: %d", userEmail, response.StatusCode)
	}
	return nil
}

// SendPasswordChangedEmail notifies a user their password was updated
func (s *EmailService) SendPasswordChangedEmail(userEmail, userName string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(userName, userEmail)
	subject := "Your Khisha password was changed"
	plainContent := fmt.Sprintf("Hello %s, the password on your account was just changed. If this wasn't you, reset your password immediately.", userName)
	htmlContent := fmt.Sprintf("<p>Hello %s,</p><p>The password on your account was just changed. If this wasn't you, reset your password immediately.</p>", userName)

	message := mail.NewSingleEmail(from, subject, to, plainContent, htmlContent)
	_, err := s.client.Send(message)
	return err
}
