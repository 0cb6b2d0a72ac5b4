package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"
)

type HealthHandler struct {
	DB               *sql.DB
	LeadWebhookURL   string
	CookieWebhookURL string
	StartTime        time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, leadWebhookURL, cookieWebhookURL string) *HealthHandler {
	return &HealthHandler{
		DB:               db,
		LeadWebhookURL:   leadWebhookURL,
		CookieWebhookURL: cookieWebhookURL,
		StartTime:        time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	// Webhooks are best-effort; absent URLs are a valid configuration,
	// never a degradation.
	if h.LeadWebhookURL != "" {
		deps["n8n_lead_webhook"] = "configured"
	} else {
		deps["n8n_lead_webhook"] = "not configured"
	}
	if h.CookieWebhookURL != "" {
		deps["n8n_cookie_webhook"] = "configured"
	} else {
		deps["n8n_cookie_webhook"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
