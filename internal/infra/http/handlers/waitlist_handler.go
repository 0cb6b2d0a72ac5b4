package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hotelmol/leads-api/internal/usecase"
)

type WaitlistHandler struct {
	UC *usecase.JoinWaitlistUseCase
}

func NewWaitlistHandler(uc *usecase.JoinWaitlistUseCase) *WaitlistHandler {
	return &WaitlistHandler{UC: uc}
}

func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var input usecase.WaitlistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	waitlist, err := h.UC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Failed to join waitlist")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success:    true,
		Message:    "Waitlist submission saved successfully",
		WaitlistID: waitlist.ID,
	})
}
