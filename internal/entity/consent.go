package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieCategories is the fixed shape stored for every consent.
// Essential is always true; the banner cannot opt out of it.
type CookieCategories struct {
	Essential bool `json:"essential"`
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}

// CookieConsent is one consent-banner interaction, append-only.
// IPHash holds a one-way hash of the client IP; the raw address is
// never persisted.
type CookieConsent struct {
	ID          string           `json:"id"`
	ConsentedAt time.Time        `json:"consentedAt"`
	Language    string           `json:"language"`
	Categories  CookieCategories `json:"categories"`
	IPHash      *string          `json:"ipHash"`
	UserAgent   *string          `json:"userAgent"`
}

func NewCookieConsent() *CookieConsent {
	return &CookieConsent{
		ID:          uuid.New().String(),
		Language:    DefaultLanguage,
		ConsentedAt: time.Now().UTC(),
	}
}

type CookieConsentRepositoryInterface interface {
	Create(ctx context.Context, consent *CookieConsent) error
	FindAll(ctx context.Context) ([]CookieConsent, error)
}
