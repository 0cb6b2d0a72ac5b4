package usecase

import (
	"context"

	"github.com/hotelmol/leads-api/internal/entity"
)

// NotifierInterface is the best-effort side-channel. Implementations must
// swallow every failure: delivery is advisory, never part of the request
// contract. Calls block for at most the notifier's own timeout; the use
// cases invoke them from a detached goroutine.
type NotifierInterface interface {
	NotifyLead(lead *entity.LeadSubmission, source string)
	NotifyConsent(consent *entity.CookieConsent)
}

// SummarizerInterface produces an on-demand digest of an article body.
// Synchronous: the caller waits for the result and sees the error.
type SummarizerInterface interface {
	Summarize(ctx context.Context, content, language string) (*entity.PostSummary, error)
}
