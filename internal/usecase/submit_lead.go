package usecase

import (
	"context"
	"log"

	"github.com/hotelmol/leads-api/internal/entity"
)

// mailchimpSkipped marks leads the (never finished) Mailchimp sync did not
// pick up. Kept as observed behavior.
const mailchimpSkipped = "skipped"

type SubmitLeadUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Notifier NotifierInterface
}

func NewSubmitLeadUseCase(leads entity.LeadRepositoryInterface, notifier NotifierInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Leads:    leads,
		Notifier: notifier,
	}
}

// Every submit method has the same shape: validate, map the form onto the
// full lead record with unset fields explicitly nil, persist, then fire
// the webhook without waiting for it.

func (uc *SubmitLeadUseCase) SubmitROI(ctx context.Context, input ROILeadInput) (*entity.LeadSubmission, error) {
	if errs := ValidateROILead(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	lead := entity.NewLeadSubmission(entity.LeadTypeROI)
	lead.Name = nullable(input.Name)
	lead.Phone = nullable(input.Phone)
	lead.PropertySize = nullable(input.PropertySize)
	lead.DataProcessing = input.DataProcessing
	lead.Marketing = input.Marketing
	lead.Language = languageOrDefault(input.Language)
	lead.UTMSource = nullable(input.UTMSource)
	lead.UTMMedium = nullable(input.UTMMedium)
	lead.UTMCampaign = nullable(input.UTMCampaign)
	lead.Referrer = nullable(input.Referrer)
	lead.MailchimpStatus = ptr(mailchimpSkipped)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &StorageError{Op: "create roi lead", Err: err}
	}

	uc.notifyLead(lead, entity.LeadTypeROI)
	return lead, nil
}

func (uc *SubmitLeadUseCase) SubmitContact(ctx context.Context, input ContactLeadInput) (*entity.LeadSubmission, error) {
	if errs := ValidateContactLead(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	lead := entity.NewLeadSubmission(entity.LeadTypeContact)
	lead.Name = nullable(input.Name)
	lead.Email = nullable(input.Email)
	lead.Phone = nullable(input.Phone)
	lead.Role = nullable(input.Role)
	lead.Property = nullable(input.Property)
	lead.Comment = nullable(input.Comment)
	lead.DataProcessing = input.DataProcessing
	lead.Marketing = input.Marketing
	lead.Language = languageOrDefault(input.Language)
	lead.UTMSource = nullable(input.UTMSource)
	lead.UTMMedium = nullable(input.UTMMedium)
	lead.UTMCampaign = nullable(input.UTMCampaign)
	lead.Referrer = nullable(input.Referrer)
	lead.MailchimpStatus = ptr(mailchimpSkipped)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &StorageError{Op: "create contact lead", Err: err}
	}

	uc.notifyLead(lead, entity.LeadTypeContact)
	return lead, nil
}

func (uc *SubmitLeadUseCase) SubmitDemo(ctx context.Context, input DemoLeadInput) (*entity.LeadSubmission, error) {
	if errs := ValidateDemoLead(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	lead := entity.NewLeadSubmission(entity.LeadTypeDemo)
	lead.Name = nullable(input.Name)
	lead.Email = nullable(input.Email)
	lead.Property = nullable(input.Property)
	lead.DataProcessing = input.DataProcessing
	lead.Marketing = input.Marketing
	lead.Language = languageOrDefault(input.Language)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &StorageError{Op: "create demo lead", Err: err}
	}

	uc.notifyLead(lead, entity.LeadTypeDemo)
	return lead, nil
}

// SubmitIntegration forces dataProcessing true regardless of the payload
// and stores no consent checkbox. Observed product behavior, pending
// clarification on the legal basis for this lead type.
func (uc *SubmitLeadUseCase) SubmitIntegration(ctx context.Context, input IntegrationLeadInput) (*entity.LeadSubmission, error) {
	if errs := ValidateIntegrationLead(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	lead := entity.NewLeadSubmission(entity.LeadTypeIntegration)
	lead.Name = nullable(input.Name)
	lead.Phone = nullable(input.Phone)
	lead.Property = nullable(input.Property)
	lead.DataProcessing = true
	lead.Marketing = false
	lead.MailchimpStatus = ptr(mailchimpSkipped)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &StorageError{Op: "create integration lead", Err: err}
	}

	uc.notifyLead(lead, entity.LeadTypeIntegration)
	return lead, nil
}

// notifyLead dispatches the webhook in a detached goroutine. The request
// never joins it and a panic inside the notifier cannot reach the caller.
func (uc *SubmitLeadUseCase) notifyLead(lead *entity.LeadSubmission, source string) {
	if uc.Notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[n8n] panic in lead notifier: %v", r)
			}
		}()
		uc.Notifier.NotifyLead(lead, source)
	}()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr(s string) *string {
	return &s
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return entity.DefaultLanguage
	}
	return lang
}
