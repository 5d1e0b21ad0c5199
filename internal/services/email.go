package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"uniboard/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	queue    *EmailQueue
	admins   []string
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that renders messages from embedded
// templates and dispatches them through the rate-limited queue.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, queue *EmailQueue, admins []string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, queue: queue, admins: admins, logger: logger}
}

// demoRequestEmail is the view passed to the demo request templates.
type demoRequestEmail struct {
	*domain.DemoRequest
	SubmissionID string
	SubmittedAt  string
}

// SubmitDemoRequest fans one form submission out to an applicant confirmation
// plus one notification per admin recipient. All sends go through the queue;
// the method returns once every job is admitted, and per-job outcomes are
// observed asynchronously.
func (s *emailService) SubmitDemoRequest(ctx context.Context, req *domain.DemoRequest) error {
	if req == nil {
		return fmt.Errorf("demo request is nil")
	}
	view := demoRequestEmail{
		DemoRequest:  req,
		SubmissionID: newSubmissionID(),
		SubmittedAt:  time.Now().Format("02.01.2006 15:04"),
	}

	subject, htmlBody, textBody, err := s.renderer.Render("demo_request_confirmation", view)
	if err != nil {
		return fmt.Errorf("render demo request confirmation: %w", err)
	}
	s.dispatch(req.Email, subject, htmlBody, textBody)

	subject, htmlBody, textBody, err = s.renderer.Render("demo_request_admin", view)
	if err != nil {
		return fmt.Errorf("render demo request admin notification: %w", err)
	}
	for _, admin := range s.admins {
		s.dispatch(admin, subject, htmlBody, textBody)
	}

	s.logger.Info("demo request queued",
		"submission_id", view.SubmissionID,
		"applicant", req.Email,
		"admin_recipients", len(s.admins))
	return nil
}

func newSubmissionID() string {
	return fmt.Sprintf("DEMO_%d_%06d", time.Now().UnixMilli(), rand.IntN(1_000_000))
}

// dispatch enqueues one send and logs its eventual outcome.
func (s *emailService) dispatch(to, subject, htmlBody, textBody string) {
	done := s.queue.Enqueue(func() error {
		return s.mailer.Send(to, subject, htmlBody, textBody)
	})
	go func() {
		if err := <-done; err != nil {
			s.logger.Error("queued email failed", "to", to, "subject", subject, "err", err)
			return
		}
		s.logger.Debug("queued email sent", "to", to, "subject", subject)
	}()
}
