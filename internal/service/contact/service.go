package contact

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-directory/internal/email"
	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/pkg/errors"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

type ContactServicer interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

type Service struct {
	mailer  email.Service
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewService(mailer email.Service, metrics *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{mailer: mailer, metrics: metrics, logger: logger}
}

func (s *Service) Send(ctx context.Context, msg model.ContactMessage) error {
	s.logger.Info().
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("Contact message received")

	if err := s.mailer.SendContact(ctx, msg); err != nil {
		s.metrics.ContactMessages.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Str("email", msg.Email).Msg("Failed to deliver contact message")
		return errors.NewInternal("failed to send message", err)
	}

	s.metrics.ContactMessages.WithLabelValues("sent").Inc()
	return nil
}
