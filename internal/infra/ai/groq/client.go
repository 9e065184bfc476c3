package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/sashabaranov/go-openai"

	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
	"github.com/sgaglani/ethiscan/internal/infra/ai/prompt"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama3-70b-8192"
)

// Client talks to Groq's OpenAI-compatible chat completion endpoint.
type Client struct {
	api          *openai.Client
	model        string
	maxTextChars int
}

// NewClient builds a Groq client. Empty baseURL and model fall back to the
// Groq endpoint and the default model. maxTextChars caps the page text
// embedded in the prompt; 0 means unbounded.
func NewClient(apiKey, baseURL, model string, maxTextChars int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:          openai.NewClientWithConfig(cfg),
		model:        model,
		maxTextChars: maxTextChars,
	}
}

// Analyze sends the ethics prompt for pageText and parses the reply as one
// JSON object. Every fault comes back in-band as the Error record variant:
// transport/API errors carry the fault message, unparseable content maps to
// the fixed invalid-JSON message. No retries; one call per analysis.
func (c *Client) Analyze(ctx context.Context, pageText string) domain.Record {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		// omitempty drops a literal 0; the smallest float is treated as 0
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.Ethics(truncate(pageText, c.maxTextChars))},
		},
	})
	if err != nil {
		return domain.ErrorRecord(fmt.Sprintf("Groq API request failed: %v", err))
	}
	if len(resp.Choices) == 0 {
		return domain.ErrorRecord("Groq API request failed: empty completion response")
	}

	content := resp.Choices[0].Message.Content
	log.Printf("groq raw response: %s", content)

	var record domain.Record
	if err := json.Unmarshal([]byte(content), &record); err != nil {
		return domain.ErrorRecord("Invalid JSON response from Groq API")
	}
	return record
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
