package usecase

import (
	"context"
	"log"

	"github.com/hotelmol/leads-api/internal/entity"
)

type RecordConsentUseCase struct {
	Consents entity.CookieConsentRepositoryInterface
	Notifier NotifierInterface
}

func NewRecordConsentUseCase(consents entity.CookieConsentRepositoryInterface, notifier NotifierInterface) *RecordConsentUseCase {
	return &RecordConsentUseCase{
		Consents: consents,
		Notifier: notifier,
	}
}

// Execute records one banner interaction. ipHash must already be a one-way
// hash; the raw client address never reaches this layer. Essential is
// forced true no matter what the banner sent.
func (uc *RecordConsentUseCase) Execute(ctx context.Context, input CookieConsentInput, ipHash, userAgent *string) (*entity.CookieConsent, error) {
	if errs := ValidateCookieConsent(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	consent := entity.NewCookieConsent()
	consent.Language = languageOrDefault(input.Language)
	consent.Categories = entity.CookieCategories{
		Essential: true,
		Analytics: *input.Categories.Analytics,
		Marketing: *input.Categories.Marketing,
	}
	consent.IPHash = ipHash
	consent.UserAgent = userAgent

	if err := uc.Consents.Create(ctx, consent); err != nil {
		return nil, &StorageError{Op: "create cookie consent", Err: err}
	}

	uc.notifyConsent(consent)
	return consent, nil
}

func (uc *RecordConsentUseCase) notifyConsent(consent *entity.CookieConsent) {
	if uc.Notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[n8n] panic in consent notifier: %v", r)
			}
		}()
		uc.Notifier.NotifyConsent(consent)
	}()
}
