package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const promptTemplate = "Summarize this task in one short sentence: %s"

// DefaultModel is used when no model is configured.
const DefaultModel = "@cf/meta/llama-3-8b-instruct"

const requestTimeout = 30 * time.Second

// ErrDisabled is returned when no generation endpoint is configured.
var ErrDisabled = errors.New("generation endpoint not configured")

// Summarizer produces one-sentence summaries of task descriptions.
type Summarizer interface {
	Summarize(ctx context.Context, description string) Result
}

// Client calls an external text-generation endpoint over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient builds a summarization client. An empty baseURL yields a client
// whose attempts always fail with ErrDisabled, so the service degrades to
// null summaries without special-casing callers.
func NewClient(baseURL, apiKey, model string, logger *slog.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpc:   &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Summarize asks the generation endpoint for a one-sentence summary of the
// description. The output is used verbatim; any failure is carried in the
// Result rather than returned as an error.
func (c *Client) Summarize(ctx context.Context, description string) Result {
	if c.baseURL == "" {
		return Result{Err: ErrDisabled}
	}

	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, description),
	})
	if err != nil {
		return Result{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Result{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("call generation endpoint: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Err: fmt.Errorf("generation endpoint returned status %d", resp.StatusCode)}
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Result{Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.Response == "" {
		return Result{Err: fmt.Errorf("generation endpoint returned empty response")}
	}

	return Result{Summary: out.Response}
}
