package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/hotelmol/leads-api/internal/infra/http/middleware"
	"github.com/hotelmol/leads-api/internal/usecase"
)

type ConsentHandler struct {
	UC *usecase.RecordConsentUseCase
}

func NewConsentHandler(uc *usecase.RecordConsentUseCase) *ConsentHandler {
	return &ConsentHandler{UC: uc}
}

// hashIP is the only place the raw client address is ever touched; only
// the digest leaves this function.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}

// clientAddress resolves the bare client IP for hashing. RemoteAddr
// carries an ephemeral port and X-Forwarded-For may list intermediate
// proxies; both would make the stored hash vary between connections
// from the same client.
func clientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (h *ConsentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input usecase.CookieConsentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	var ipHash *string
	if ip := clientAddress(r); ip != "" {
		hashed := hashIP(ip)
		ipHash = &hashed
	}

	var userAgent *string
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}

	consent, err := h.UC.Execute(r.Context(), input, ipHash, userAgent)
	if err != nil {
		writeUseCaseError(w, err, "Failed to save cookie consent")
		return
	}

	middleware.RecordConsent()
	writeJSON(w, http.StatusOK, APIResponse{
		Success:   true,
		Message:   "Cookie consent saved successfully",
		ConsentID: consent.ID,
	})
}
