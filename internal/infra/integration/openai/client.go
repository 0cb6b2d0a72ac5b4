package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hotelmol/leads-api/internal/entity"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	model          = "gpt-4o"
)

// Client generates article summaries through the OpenAI chat completions
// API. Unlike the webhook side-channel this is a synchronous dependency:
// the caller waits for the result and sees the error.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL points the client at an alternate API endpoint.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Summarize(ctx context.Context, content, language string) (*entity.PostSummary, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openai: API key not configured")
	}

	prompt := fmt.Sprintf(`You are a professional assistant for hoteliers. Provide a brief summary and 3-5 key points from the following article. The response must be in %s.
Format the output as follows:
SUMMARY: [One paragraph summary]
KEY_POINTS:
- [Point 1]
- [Point 2]
...`, languageName(language))

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: content},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}

	if completion.Error != nil {
		return nil, fmt.Errorf("openai: %s", completion.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty completion")
	}

	return parseSummary(completion.Choices[0].Message.Content), nil
}

func languageName(language string) string {
	switch language {
	case "ru":
		return "Russian"
	case "uk":
		return "Ukrainian"
	default:
		return "English"
	}
}

// parseSummary splits the model output into its SUMMARY paragraph and
// KEY_POINTS bullets. Output that ignores the format is returned whole
// as the summary.
func parseSummary(text string) *entity.PostSummary {
	result := &entity.PostSummary{KeyPoints: []string{}}

	rest := text
	if i := strings.Index(rest, "SUMMARY:"); i >= 0 {
		rest = rest[i+len("SUMMARY:"):]
	}

	i := strings.Index(rest, "KEY_POINTS:")
	if i < 0 {
		result.Summary = strings.TrimSpace(rest)
		return result
	}

	result.Summary = strings.TrimSpace(rest[:i])
	for _, line := range strings.Split(rest[i+len("KEY_POINTS:"):], "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line != "" {
			result.KeyPoints = append(result.KeyPoints, line)
		}
	}
	return result
}
