package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"farmconnect/config"
)

// GroqClient calls the Groq OpenAI-compatible chat completions API. The model
// is treated as an opaque external service: unavailable, malformed, or
// schema-breaking responses surface as plain errors to the caller.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGroqClient() *GroqClient {
	return &GroqClient{
		apiKey:  config.AppConfig.GroqAPIKey,
		model:   config.AppConfig.GroqModel,
		baseURL: config.AppConfig.GroqBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewGroqClientWith is used by tests to point the client at a fake server.
func NewGroqClientWith(apiKey, model, baseURL string, httpClient *http.Client) *GroqClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &GroqClient{apiKey: apiKey, model: model, baseURL: baseURL, httpClient: httpClient}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GroqClient) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("GROQ_API_KEY not configured")
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0,
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("malformed model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil && completion.Error.Message != "" {
			return "", fmt.Errorf("model error: %s", completion.Error.Message)
		}
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// CompleteJSON asks the model for a JSON object response and returns the raw
// message content for schema validation by the caller.
func (c *GroqClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, true)
}

// CompleteText asks the model for a plain-text response.
func (c *GroqClient) CompleteText(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, false)
}
