// Package assistant provides the remote chat-completion client behind
// the assistant view. All failures degrade to a fixed fallback reply so
// the conversation never surfaces transport errors.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Can-Ozan/ergotop/internal/storage"
)

// Fallback is returned whenever a completion cannot be produced.
const Fallback = "Sorry, I can't answer right now. Please try again later. In the meantime, remember the 20-20-20 rule: every 20 minutes, look at something 6 meters away for 20 seconds! 👀"

// Welcome greets the user when the assistant view is first opened.
const Welcome = "Hello! I'm your personal wellness assistant. I can help with posture checks, exercise reminders, and healthy work habits. Do you have any questions? 🌟"

const systemPrompt = `You are the ergotop wellness assistant. You help remote workers with ergonomics, posture, eye health, and healthy work habits in general.

Your style:
- Be friendly and conversational
- Give short, practical suggestions
- Stay positive and motivating
- Give professional advice on health topics
- Cover ergonomics, posture checks, eye exercises, and break habits
- Never give potentially harmful advice; refer serious health concerns to a doctor

Help with the user's question:`

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("assistant api key is not configured")

// Config configures the chat-completion client.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	cfg Config
}

// NewClient builds a Client, filling config defaults.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	return &Client{cfg: cfg}
}

// Chat produces a reply to message, enriching the system prompt with
// recent-activity context lines. Any failure logs a warning and returns
// the fallback reply.
func (c *Client) Chat(ctx context.Context, message string, activityContext []string) string {
	reply, err := c.complete(ctx, message, activityContext)
	if err != nil {
		log.Printf("WARNING: assistant completion failed: %v", err)
		return Fallback
	}
	return reply
}

func (c *Client) complete(ctx context.Context, message string, activityContext []string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	prompt := systemPrompt
	if len(activityContext) > 0 {
		prompt += "\n\nRecent activity: " + strings.Join(activityContext, ", ")
	}

	requestBody, err := json.Marshal(map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt},
			{"role": "user", "content": message},
		},
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material is sent only as an Authorization header and is
	// never echoed in errors or logs.
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read chat error body: %w", err)
		}
		return "", fmt.Errorf("chat request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("chat response has no choices")
	}
	reply := strings.TrimSpace(payload.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("chat response missing content")
	}
	return reply, nil
}

// ActivityContext formats recent activity rows as context lines for the
// system prompt, newest first.
func ActivityContext(records []storage.ActivityRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, fmt.Sprintf("%s (%s)", rec.ActivityType, rec.CreatedAt.Format("2006-01-02")))
	}
	return out
}
