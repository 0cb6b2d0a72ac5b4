package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead types match the public form that produced the submission.
const (
	LeadTypeROI         = "roi"
	LeadTypeContact     = "contact"
	LeadTypeDemo        = "demo"
	LeadTypeIntegration = "integration"
)

// DefaultLanguage is the fallback locale stored when a form does not say
// which language the visitor was browsing in.
const DefaultLanguage = "en"

// LeadSubmission is one form conversion event. Records are append-only:
// the application never updates or deletes them.
type LeadSubmission struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Role           *string `json:"role"`
	Property       *string `json:"property"`
	PropertySize   *string `json:"propertySize"`
	Comment        *string `json:"comment"`
	DataProcessing bool    `json:"dataProcessing"`
	Marketing      bool    `json:"marketing"`
	Language       string  `json:"language"`

	// Marketing attribution captured at submission time.
	UTMSource   *string `json:"utmSource"`
	UTMMedium   *string `json:"utmMedium"`
	UTMCampaign *string `json:"utmCampaign"`
	Referrer    *string `json:"referrer"`

	// Vestigial Mailchimp integration point, only ever "skipped" or null.
	MailchimpStatus *string `json:"mailchimpStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewLeadSubmission assigns the server-side identity and timestamp.
// Field mapping is done by the caller, one shape per form.
func NewLeadSubmission(leadType string) *LeadSubmission {
	return &LeadSubmission{
		ID:        uuid.New().String(),
		Type:      leadType,
		Language:  DefaultLanguage,
		CreatedAt: time.Now().UTC(),
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *LeadSubmission) error
	FindAll(ctx context.Context) ([]LeadSubmission, error)
	FindByID(ctx context.Context, id string) (*LeadSubmission, error)
}
