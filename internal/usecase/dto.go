package usecase

// One input type per public form. Field names mirror what the frontend
// actually posts; anything optional arrives as the zero value.

type ROILeadInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	PropertySize   string `json:"propertySize"`
	DataProcessing bool   `json:"dataProcessing"`
	Marketing      bool   `json:"marketing"`
	Language       string `json:"language"`
	UTMSource      string `json:"utmSource"`
	UTMMedium      string `json:"utmMedium"`
	UTMCampaign    string `json:"utmCampaign"`
	Referrer       string `json:"referrer"`
}

type ContactLeadInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Property       string `json:"property"`
	Comment        string `json:"comment"`
	DataProcessing bool   `json:"dataProcessing"`
	Marketing      bool   `json:"marketing"`
	Language       string `json:"language"`
	UTMSource      string `json:"utmSource"`
	UTMMedium      string `json:"utmMedium"`
	UTMCampaign    string `json:"utmCampaign"`
	Referrer       string `json:"referrer"`
}

type DemoLeadInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Property       string `json:"property"`
	DataProcessing bool   `json:"dataProcessing"`
	Marketing      bool   `json:"marketing"`
	Language       string `json:"language"`
}

type IntegrationLeadInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Property string `json:"property"`
	// Language is accepted for wire compatibility with the popup form
	// but ignored: integration leads are always recorded in the default
	// language.
	Language string `json:"language"`
}

// CookieCategoriesInput uses pointers so a banner that never sent the
// analytics or marketing choice is rejected instead of defaulting to false.
type CookieCategoriesInput struct {
	Essential *bool `json:"essential"`
	Analytics *bool `json:"analytics"`
	Marketing *bool `json:"marketing"`
}

type CookieConsentInput struct {
	Language   string                 `json:"language"`
	Categories *CookieCategoriesInput `json:"categories"`
}

type WaitlistInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Budget    string `json:"budget"`
	HotelName string `json:"hotelName"`
	Language  string `json:"language"`
}

type SummarizeInput struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}
