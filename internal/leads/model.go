package leads

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lead does not exist.
	ErrNotFound = errors.New("lead not found")
	// ErrInvalid is returned when a lead fails validation.
	ErrInvalid = errors.New("invalid lead")
)

// Company-size brackets a lead may declare.
const (
	SizeSmall = "1-50"
	SizeMid   = "51-200"
	SizeLarge = "200+"
)

// Lead is a prospect captured from the assessment funnel.
type Lead struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	Phone         string    `json:"phone,omitempty"`
	CompanySize   string    `json:"companySize"`
	EmployeeCount *int      `json:"employeeCount,omitempty"`
	Industry      string    `json:"industry,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HighValue reports whether the lead should trigger the sales alert.
func (l Lead) HighValue() bool {
	return l.CompanySize == SizeLarge
}
