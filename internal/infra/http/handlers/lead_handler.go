package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hotelmol/leads-api/internal/entity"
	"github.com/hotelmol/leads-api/internal/infra/http/middleware"
	"github.com/hotelmol/leads-api/internal/usecase"
)

type LeadHandler struct {
	UC          *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		UC:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) SubmitROI(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.ROILeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.UC.SubmitROI(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Failed to submit request")
		return
	}

	middleware.RecordLead(entity.LeadTypeROI)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "ROI estimate request submitted successfully",
		LeadID:  lead.ID,
	})
}

func (h *LeadHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.ContactLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.UC.SubmitContact(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Failed to submit contact form")
		return
	}

	middleware.RecordLead(entity.LeadTypeContact)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		LeadID:  lead.ID,
	})
}

func (h *LeadHandler) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.DemoLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.UC.SubmitDemo(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Failed to submit demo request")
		return
	}

	middleware.RecordLead(entity.LeadTypeDemo)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Demo request submitted successfully",
		LeadID:  lead.ID,
	})
}

func (h *LeadHandler) SubmitIntegration(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.IntegrationLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	lead, err := h.UC.SubmitIntegration(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Failed to submit integration request")
		return
	}

	middleware.RecordLead(entity.LeadTypeIntegration)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Integration request submitted successfully",
		LeadID:  lead.ID,
	})
}

func (h *LeadHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if h.rateLimiter.Allow(getClientIP(r)) {
		return true
	}
	writeJSON(w, http.StatusTooManyRequests, APIResponse{
		Success: false,
		Message: "Too many requests. Please try again later.",
	})
	return false
}
