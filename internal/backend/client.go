// Package backend is the HTTP client for the external chatbot service. All
// calls are best-effort: callers treat any error as "backend offline" and
// answer from the local rule set.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cyberlaw-chat/internal/checklist"
)

// FilePayload is an attachment forwarded verbatim to the backend. Data is
// base64, optionally carrying a data-URI prefix the backend strips itself.
type FilePayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

type ReplyResult struct {
	Reply            string
	DetectedLanguage string
	Intent           string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Reply asks the backend for an answer to a user message. Non-2xx statuses,
// malformed payloads and explicit success=false all surface as errors.
func (c *Client) Reply(ctx context.Context, message string, file *FilePayload) (*ReplyResult, error) {
	reqBody := map[string]interface{}{
		"message": message,
	}
	if file != nil {
		reqBody["file"] = file
	}

	raw, err := c.post(ctx, "/api/chat", reqBody)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Response         string `json:"response"`
		DetectedLanguage string `json:"detected_language"`
		Intent           string `json:"intent"`
		Success          bool   `json:"success"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse chat response failed: %w", err)
	}
	if !parsed.Success || strings.TrimSpace(parsed.Response) == "" {
		return nil, fmt.Errorf("backend chat failed: %s", parsed.Error)
	}

	return &ReplyResult{
		Reply:            parsed.Response,
		DetectedLanguage: parsed.DetectedLanguage,
		Intent:           parsed.Intent,
	}, nil
}

// GenerateChecklist implements checklist.UpstreamGenerator.
func (c *Client) GenerateChecklist(ctx context.Context, complaintText string) (*checklist.Checklist, error) {
	raw, err := c.post(ctx, "/api/generate-checklist", map[string]interface{}{
		"complaint_type": complaintText,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Success   bool                 `json:"success"`
		Checklist *checklist.Checklist `json:"checklist"`
		Error     string               `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse checklist response failed: %w", err)
	}
	if !parsed.Success || parsed.Checklist == nil {
		return nil, fmt.Errorf("backend checklist failed: %s", parsed.Error)
	}
	return parsed.Checklist, nil
}

// Ping reports whether the backend health endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request failed: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend health request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("backend health status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal backend request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("build backend request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read backend response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend response status %d", resp.StatusCode)
	}
	return raw, nil
}
