// Package oracle talks to the text-generation service that answers
// fact-check requests.
//
// Requests go through a caller-supplied *http.Client so tests and
// deployments control transport, TLS and proxies.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Prompt prefixes every claim sent to the model.
const Prompt = "As a fact-checker, please verify or answer this: "

const (
	DefaultBaseURL = "https://api.cohere.ai"
	DefaultModel   = "command"
	DefaultTimeout = 15 * time.Second

	maxTokens   = 150
	temperature = 0.3
)

var ErrMalformedResponse = errors.New("oracle: malformed response")

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Cohere calls the Cohere generate endpoint.
type Cohere struct {
	httpClient *http.Client
	cfg        Config
}

func NewCohere(httpClient *http.Client, cfg Config) *Cohere {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Cohere{httpClient: httpClient, cfg: cfg}
}

type generateRequest struct {
	Model            string  `json:"model"`
	Prompt           string  `json:"prompt"`
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	PresencePenalty  float64 `json:"presence_penalty"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

type generateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

// ProviderError is returned when the service answers with a non-200 status.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (err *ProviderError) Error() string {
	return fmt.Sprintf("oracle: HTTP %d: %s", err.StatusCode, err.Message)
}

// Verify sends the claim and returns the first generation. The call is
// bounded by the configured timeout.
func (c *Cohere) Verify(ctx context.Context, claim string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:       c.cfg.Model,
		Prompt:      Prompt + claim,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("oracle: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("oracle: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: string(msg)}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("oracle: decoding response: %w", err)
	}
	if len(out.Generations) == 0 {
		return "", ErrMalformedResponse
	}
	return out.Generations[0].Text, nil
}
