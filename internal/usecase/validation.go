package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Every validate function enumerates all failing fields; there is no
// short-circuit and no partial acceptance.

func ValidateROILead(input ROILeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}
	if strings.TrimSpace(input.PropertySize) == "" {
		errors = append(errors, ValidationError{"propertySize", "is required"})
	}
	if !input.DataProcessing {
		errors = append(errors, ValidationError{"dataProcessing", "you must agree to data processing"})
	}

	return errors
}

func ValidateContactLead(input ContactLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "must be a valid email address"})
	}
	if !input.DataProcessing {
		errors = append(errors, ValidationError{"dataProcessing", "you must agree to data processing"})
	}

	return errors
}

func ValidateDemoLead(input DemoLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "must be a valid email address"})
	}
	if !input.DataProcessing {
		errors = append(errors, ValidationError{"dataProcessing", "you must agree to data processing"})
	}

	return errors
}

// Integration requests carry no consent checkbox; only the phone number
// is mandatory.
func ValidateIntegrationLead(input IntegrationLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	return errors
}

func ValidateCookieConsent(input CookieConsentInput) []ValidationError {
	var errors []ValidationError

	if input.Categories == nil {
		errors = append(errors, ValidationError{"categories", "is required"})
		return errors
	}
	if input.Categories.Analytics == nil {
		errors = append(errors, ValidationError{"categories.analytics", "must be an explicit boolean"})
	}
	if input.Categories.Marketing == nil {
		errors = append(errors, ValidationError{"categories.marketing", "must be an explicit boolean"})
	}

	return errors
}

func ValidateWaitlist(input WaitlistInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}
	if strings.TrimSpace(input.Budget) == "" {
		errors = append(errors, ValidationError{"budget", "is required"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
