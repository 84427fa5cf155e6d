package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/clinic-directory/internal/model"
)

// Service delivers contact form submissions to the support inbox
type Service interface {
	SendContact(ctx context.Context, msg model.ContactMessage) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Sender is the subset of gomail.Dialer used by SMTPService
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPService sends contact messages over SMTP
type SMTPService struct {
	sender Sender
	from   string
	to     string
}

func NewSMTPService(cfg Config) *SMTPService {
	return NewSMTPServiceWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, cfg.To)
}

func NewSMTPServiceWithSender(sender Sender, from, to string) *SMTPService {
	return &SMTPService{sender: sender, from: from, to: to}
}

func (s *SMTPService) SendContact(ctx context.Context, msg model.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.sender.DialAndSend(s.build(msg)); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func (s *SMTPService) build(msg model.ContactMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", "[Contact] "+msg.Subject)
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s\n", msg.Name, msg.Email, msg.Message))
	return m
}

// LogService only logs submissions. It is used when no SMTP host is configured.
type LogService struct {
	logger zerolog.Logger
}

func NewLogService(logger zerolog.Logger) *LogService {
	return &LogService{logger: logger}
}

func (s *LogService) SendContact(_ context.Context, msg model.ContactMessage) error {
	s.logger.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Int("message_length", len(msg.Message)).
		Msg("Contact form submission")
	return nil
}
