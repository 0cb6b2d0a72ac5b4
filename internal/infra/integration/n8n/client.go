package n8n

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/hotelmol/leads-api/internal/entity"
	"github.com/hotelmol/leads-api/internal/infra/http/middleware"
)

// Client relays newly created records to the n8n workflow webhooks.
// Delivery is advisory: one bounded attempt per event, every failure is
// logged and swallowed. An unset URL disables that channel entirely.
type Client struct {
	leadWebhookURL   string
	cookieWebhookURL string
	http             *http.Client
}

func NewClient(leadWebhookURL, cookieWebhookURL string) *Client {
	return &Client{
		leadWebhookURL:   leadWebhookURL,
		cookieWebhookURL: cookieWebhookURL,
		http:             &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) NotifyLead(lead *entity.LeadSubmission, source string) {
	c.send(ChannelLead, source, lead)
}

func (c *Client) NotifyConsent(consent *entity.CookieConsent) {
	c.send(ChannelCookie, "", consent)
}

func (c *Client) send(channel, source string, data any) {
	url := c.leadWebhookURL
	if channel == ChannelCookie {
		url = c.cookieWebhookURL
	}

	if url == "" {
		log.Printf("[n8n] skipped: no webhook URL configured for %s", channel)
		return
	}

	payload := EventPayload{
		Type:      channel,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[n8n] failed to marshal %s payload: %v", channel, err)
		middleware.RecordWebhookError(channel)
		return
	}

	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[n8n] failed to send %s webhook: %v", channel, err)
		middleware.RecordWebhookError(channel)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[n8n] %s webhook returned status %d", channel, resp.StatusCode)
		middleware.RecordWebhookError(channel)
		return
	}

	log.Printf("[n8n] %s event delivered", channel)
}
