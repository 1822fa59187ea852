package service

import (
	"context"
	"fmt"

	"rakshak-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, name, token string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received a request to reset your password. Use the following token to set a new one:\n\n%s\n\nThe token expires in 15 minutes. If you did not request a reset, you can ignore this email.",
		name, token)
	return s.send(ctx, email, name, "Password Reset Request", body)
}

func (s *emailService) SendResourceRequestDecision(ctx context.Context, email, name, resourceName, decision string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour resource request for %q has been %s.", name, resourceName, decision)
	return s.send(ctx, email, name, "Resource Request Update", body)
}

func (s *emailService) SendApplicationDecision(ctx context.Context, email, name, decision string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour volunteer application has been %s.", name, decision)
	if decision == "approved" {
		body += "\n\nYou can now accept relief tasks from the volunteer dashboard."
	}
	return s.send(ctx, email, name, "Volunteer Application Update", body)
}
