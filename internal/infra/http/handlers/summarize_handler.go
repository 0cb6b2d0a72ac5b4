package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hotelmol/leads-api/internal/usecase"
)

type SummarizeHandler struct {
	UC *usecase.SummarizePostUseCase
}

func NewSummarizeHandler(uc *usecase.SummarizePostUseCase) *SummarizeHandler {
	return &SummarizeHandler{UC: uc}
}

type summaryResponse struct {
	Success   bool     `json:"success"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var input usecase.SummarizeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	summary, err := h.UC.Execute(r.Context(), input)
	if err != nil {
		if _, ok := usecase.AsInvalidInput(err); ok {
			writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Content is required"})
			return
		}
		log.Printf("[api] failed to generate summary: %v", err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{Success: false, Message: "Failed to generate summary"})
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Success:   true,
		Summary:   summary.Summary,
		KeyPoints: summary.KeyPoints,
	})
}
