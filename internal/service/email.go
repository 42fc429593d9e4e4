package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"

	"hostelhub-backend/internal/config"
	"hostelhub-backend/internal/domain"
)

// sender abstracts the outbound provider so the notification bodies are
// written once regardless of transport.
type sender interface {
	send(to, subject, body string) error
}

type emailService struct {
	sender   sender
	fromName string
}

// NewEmailService builds the provider selected in configuration. The
// "smtp" provider dials the configured relay with gomail, "sendgrid"
// goes through the SendGrid API.
func NewEmailService(cfg *config.Config) EmailService {
	var s sender
	switch cfg.Email.Provider {
	case "sendgrid":
		s = &sendgridSender{
			apiKey:    cfg.Email.SendGridAPIKey,
			fromEmail: cfg.SMTP.From,
			fromName:  cfg.Email.FromName,
		}
	default:
		s = &smtpSender{
			host:     cfg.SMTP.Host,
			port:     cfg.SMTP.Port,
			username: cfg.SMTP.User,
			password: cfg.SMTP.Password,
			from:     cfg.SMTP.From,
		}
	}
	return &emailService{sender: s, fromName: cfg.Email.FromName}
}

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func (s *smtpSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}

type sendgridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func (s *sendgridSender) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

func (s *emailService) SendSignupApproved(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour registration has been approved. You can now log in with your username and password.\n\nBest regards,\nThe %s Team", username, s.fromName)
	return s.sender.send(email, "Registration Approved", body)
}

func (s *emailService) SendSignupRejected(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour registration request has been reviewed and was not approved. Please contact the hostel office for details.\n\nBest regards,\nThe %s Team", username, s.fromName)
	return s.sender.send(email, "Registration Update", body)
}

func (s *emailService) SendAccountBlocked(ctx context.Context, email, username, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour account has been blocked by the administration.", username)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += fmt.Sprintf("\n\nBest regards,\nThe %s Team", s.fromName)
	return s.sender.send(email, "Account Blocked", body)
}

func (s *emailService) SendAccountUnblocked(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour account has been unblocked. You can log in again.\n\nBest regards,\nThe %s Team", username, s.fromName)
	return s.sender.send(email, "Account Unblocked", body)
}

func (s *emailService) SendPendingSignupDigest(ctx context.Context, adminEmail string, pending []domain.PendingSignup) error {
	if len(pending) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d registration requests waiting for review:\n\n", len(pending))
	for _, p := range pending {
		fmt.Fprintf(&b, "- %s (%s), submitted %s\n", p.Username, p.Email, p.SubmittedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "\nBest regards,\nThe %s Team", s.fromName)

	return s.sender.send(adminEmail, "Pending Registrations Digest", b.String())
}
