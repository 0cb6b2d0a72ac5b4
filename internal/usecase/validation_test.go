package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateROILead(t *testing.T) {
	errs := ValidateROILead(ROILeadInput{
		Name:           "Jane",
		Phone:          "+36 30 123 4567",
		PropertySize:   "20-50",
		DataProcessing: true,
	})
	assert.Empty(t, errs)
}

func TestValidateROILeadEnumeratesAllFailures(t *testing.T) {
	errs := ValidateROILead(ROILeadInput{})

	assert.Len(t, errs, 4)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "phone", "propertySize", "dataProcessing"}, fields)
}

func TestValidateROILeadRejectsMissingConsent(t *testing.T) {
	errs := ValidateROILead(ROILeadInput{
		Name:           "Jane",
		Phone:          "+111",
		PropertySize:   "20-50",
		DataProcessing: false,
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "dataProcessing", errs[0].Field)
}

func TestValidateContactLead(t *testing.T) {
	errs := ValidateContactLead(ContactLeadInput{
		Name:           "Jane",
		Email:          "jane@x.com",
		DataProcessing: true,
	})
	assert.Empty(t, errs)
}

func TestValidateContactLeadRejectsBadEmail(t *testing.T) {
	errs := ValidateContactLead(ContactLeadInput{
		Name:           "Jane",
		Email:          "not-an-email",
		DataProcessing: true,
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateDemoLeadRejectsMissingConsent(t *testing.T) {
	errs := ValidateDemoLead(DemoLeadInput{
		Name:  "Jane",
		Email: "jane@x.com",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "dataProcessing", errs[0].Field)
}

func TestValidateIntegrationLeadRequiresOnlyPhone(t *testing.T) {
	assert.Empty(t, ValidateIntegrationLead(IntegrationLeadInput{Phone: "+111"}))

	errs := ValidateIntegrationLead(IntegrationLeadInput{Name: "Jane"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestValidateCookieConsentRequiresExplicitChoices(t *testing.T) {
	assert.NotEmpty(t, ValidateCookieConsent(CookieConsentInput{}))

	analytics := true
	errs := ValidateCookieConsent(CookieConsentInput{
		Categories: &CookieCategoriesInput{Analytics: &analytics},
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "categories.marketing", errs[0].Field)

	marketing := false
	errs = ValidateCookieConsent(CookieConsentInput{
		Categories: &CookieCategoriesInput{Analytics: &analytics, Marketing: &marketing},
	})
	assert.Empty(t, errs)
}

func TestValidateWaitlist(t *testing.T) {
	errs := ValidateWaitlist(WaitlistInput{Name: "Jane"})

	assert.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.ElementsMatch(t, []string{"phone", "budget"}, fields)
}
