package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hotelmol/leads-api/internal/usecase"
)

// APIResponse is the envelope every endpoint answers with. Exactly one of
// the id fields is set on success, depending on the entity created.
type APIResponse struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message,omitempty"`
	Errors     []usecase.ValidationError `json:"errors,omitempty"`
	LeadID     string                    `json:"leadId,omitempty"`
	ConsentID  string                    `json:"consentId,omitempty"`
	WaitlistID string                    `json:"waitlistId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeUseCaseError maps the error taxonomy onto the wire: validation
// failures answer 400 with every failing field, anything else answers 500
// with a generic message and full detail in the server log only.
func writeUseCaseError(w http.ResponseWriter, err error, genericMessage string) {
	if ie, ok := usecase.AsInvalidInput(err); ok {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Errors:  ie.Fields,
		})
		return
	}

	log.Printf("[api] %s: %v", genericMessage, err)
	writeJSON(w, http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: genericMessage,
	})
}
