package n8n

// Channels discriminate which workflow receives the event.
const (
	ChannelLead   = "lead"
	ChannelCookie = "cookie"
)

// EventPayload is the envelope posted to the workflow webhook. Timestamp
// is the notification's own generation time, not the record's createdAt.
type EventPayload struct {
	Type      string `json:"type"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}
