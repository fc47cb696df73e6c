package contacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sumitlokhande/portfolio/internal/notify"
	"github.com/sumitlokhande/portfolio/internal/observability/metrics"
	"github.com/sumitlokhande/portfolio/pkg/logging"
)

// Ordering controls whether the notification email is attempted before or
// after the submission is persisted.
type Ordering string

const (
	// NotifyFirst sends the email first; a delivery failure rejects the
	// request and nothing is stored.
	NotifyFirst Ordering = "notify-first"

	// StoreFirst persists first; a delivery failure is logged as a warning
	// and the request still succeeds, so no accepted submission is lost.
	StoreFirst Ordering = "store-first"
)

// ParseOrdering maps a config string onto an Ordering, defaulting to
// NotifyFirst.
func ParseOrdering(s string) Ordering {
	if Ordering(s) == StoreFirst {
		return StoreFirst
	}
	return NotifyFirst
}

// ServiceConfig holds the pipeline knobs.
type ServiceConfig struct {
	// Destination for notification emails, usually the site owner.
	ToEmail string
	ToName  string

	Ordering Ordering

	// StepTimeout bounds each of the email and store calls. Zero means
	// 10 seconds.
	StepTimeout time.Duration
}

// Service runs the contact submission pipeline: validate, notify, persist.
type Service struct {
	repo    Repository
	sender  notify.EmailSender
	cfg     ServiceConfig
	metrics *metrics.ContactMetrics
	logger  *logging.Logger
}

// NewService creates a submission pipeline service.
func NewService(repo Repository, sender notify.EmailSender, cfg ServiceConfig, m *metrics.ContactMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("contacts: repository required")
	}
	if sender == nil {
		panic("contacts: email sender required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 10 * time.Second
	}
	if cfg.Ordering == "" {
		cfg.Ordering = NotifyFirst
	}
	return &Service{
		repo:    repo,
		sender:  sender,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// Submit validates the request, then notifies and persists in the
// configured order. Errors are classified so the handler can map them onto
// the wire contract: *ValidationError for bad input, ErrDeliveryFailed and
// ErrPersistenceFailed for the two downstream steps.
func (s *Service) Submit(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObservePipelineLatency(time.Since(start).Seconds())
	}()

	if err := req.Validate(); err != nil {
		s.metrics.ObserveSubmission("invalid")
		return nil, err
	}

	if s.cfg.Ordering == StoreFirst {
		return s.submitStoreFirst(ctx, req)
	}
	return s.submitNotifyFirst(ctx, req)
}

func (s *Service) submitNotifyFirst(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	if err := s.sendEmail(ctx, req); err != nil {
		s.metrics.ObserveSubmission("delivery_error")
		return nil, err
	}

	sub, err := s.store(ctx, req)
	if err != nil {
		s.metrics.ObserveSubmission("store_error")
		return nil, err
	}

	s.metrics.ObserveSubmission("accepted")
	return sub, nil
}

func (s *Service) submitStoreFirst(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	sub, err := s.store(ctx, req)
	if err != nil {
		s.metrics.ObserveSubmission("store_error")
		return nil, err
	}

	if err := s.sendEmail(ctx, req); err != nil {
		// The submission is already durable; delivery failure is
		// non-fatal in this ordering.
		s.logger.Warn("contact stored but notification failed", "id", sub.ID, "error", err)
	}

	s.metrics.ObserveSubmission("accepted")
	return sub, nil
}

func (s *Service) sendEmail(ctx context.Context, req *CreateContactRequest) error {
	msg := notify.ContactEmail(s.cfg.ToEmail, s.cfg.ToName, notify.ContactEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, msg); err != nil {
		s.metrics.ObserveEmailSend(false)
		s.logger.Error("contact email delivery failed", "error", err, "from", req.Email)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	s.metrics.ObserveEmailSend(true)
	return nil
}

func (s *Service) store(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	defer cancel()

	sub, err := s.repo.Create(storeCtx, req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		s.logger.Error("contact store failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return sub, nil
}

// ListAll returns every stored submission.
func (s *Service) ListAll(ctx context.Context) ([]*ContactSubmission, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	defer cancel()

	subs, err := s.repo.ListAll(listCtx)
	if err != nil {
		s.logger.Error("contact list failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	return subs, nil
}
