// Package leads captures prospects and alerts the sales team.
package leads

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/telemetry"
)

const defaultNotifyTimeout = 5 * time.Second

// Mailer delivers the new-lead e-mail.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// Publisher delivers the high-value lead alert.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

// CaptureInput is the submitted contact form.
type CaptureInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Phone         string `json:"phone"`
	CompanySize   string `json:"companySize"`
	EmployeeCount *int   `json:"employeeCount"`
	Industry      string `json:"industry"`
}

// Service orchestrates lead capture.
type Service struct {
	Repo          Repo
	Mailer        Mailer
	Publisher     Publisher
	Log           telemetry.Logger
	Now           func() time.Time
	NotifyTimeout time.Duration
}

// NewService constructs a Service. Nil notifiers disable that channel.
func NewService(repo Repo, mailer Mailer, publisher Publisher, log telemetry.Logger) *Service {
	if log == nil {
		log = telemetry.NewNoOpLogger()
	}
	return &Service{
		Repo:          repo,
		Mailer:        mailer,
		Publisher:     publisher,
		Log:           log,
		Now:           time.Now,
		NotifyTimeout: defaultNotifyTimeout,
	}
}

// Capture validates and stores a lead, then notifies sales. Notification
// failures are logged and never fail the capture.
func (s *Service) Capture(ctx context.Context, in CaptureInput) (Lead, error) {
	lead := Lead{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Company:       strings.TrimSpace(in.Company),
		Phone:         strings.TrimSpace(in.Phone),
		CompanySize:   strings.TrimSpace(in.CompanySize),
		EmployeeCount: in.EmployeeCount,
		Industry:      strings.TrimSpace(in.Industry),
	}
	if err := validate(lead); err != nil {
		return Lead{}, err
	}
	lead.ID = uuid.New()
	lead.CreatedAt = s.Now().UTC()

	if err := s.Repo.Create(ctx, lead); err != nil {
		return Lead{}, fmt.Errorf("store lead: %w", err)
	}
	metrics.IncLead(lead.CompanySize)
	s.Log.Info("lead captured", map[string]any{
		"lead_id":      lead.ID.String(),
		"company_size": lead.CompanySize,
	})

	s.notify(ctx, lead)
	return lead, nil
}

// Get returns a stored lead.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) notify(ctx context.Context, lead Lead) {
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if s.Mailer != nil {
		subject := fmt.Sprintf("New lead: %s (%s)", lead.Company, lead.CompanySize)
		if err := s.Mailer.Send(ctx, subject, summary(lead)); err != nil {
			s.Log.Warn("lead email failed", map[string]any{"lead_id": lead.ID.String(), "error": err})
		}
	}
	if s.Publisher != nil && lead.HighValue() {
		subject := "High-value lead: " + lead.Company
		if err := s.Publisher.Publish(ctx, subject, summary(lead)); err != nil {
			s.Log.Warn("lead alert failed", map[string]any{"lead_id": lead.ID.String(), "error": err})
		}
	}
}

func summary(lead Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Company: %s\n", lead.Company)
	if lead.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	}
	fmt.Fprintf(&b, "Company size: %s\n", lead.CompanySize)
	if lead.EmployeeCount != nil {
		fmt.Fprintf(&b, "Employees: %d\n", *lead.EmployeeCount)
	}
	if lead.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", lead.Industry)
	}
	fmt.Fprintf(&b, "Lead ID: %s\n", lead.ID)
	return b.String()
}

func validate(lead Lead) error {
	switch {
	case lead.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalid)
	case lead.Company == "":
		return fmt.Errorf("%w: company is required", ErrInvalid)
	case lead.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if addr, err := mail.ParseAddress(lead.Email); err != nil || addr.Address != lead.Email {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalid)
	}
	switch lead.CompanySize {
	case SizeSmall, SizeMid, SizeLarge:
	default:
		return fmt.Errorf("%w: companySize must be one of %s, %s, %s", ErrInvalid, SizeSmall, SizeMid, SizeLarge)
	}
	if lead.EmployeeCount != nil && *lead.EmployeeCount < 0 {
		return fmt.Errorf("%w: employeeCount must not be negative", ErrInvalid)
	}
	return nil
}
