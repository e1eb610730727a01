// Package extractor obtains plain text from a statement PDF, either through
// the remote text-extraction service or, when none is configured, a local
// PDF library fallback. Everything here is boundary code: the analysis
// pipeline only ever sees the resulting string.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client talks to the Tika-style extraction service: POST a PDF as multipart
// field "file" to /analyze, get back JSON with a "text" field.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryConfig
}

// NewClient creates a client for the extraction service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // extraction hosts can be slow to wake
		},
		retry: DefaultRetryConfig,
	}
}

type analyzeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// ExtractText uploads the PDF bytes and returns the extracted text. Network
// and 5xx failures are retried with backoff; a response without a usable
// "text" field is a non-retryable boundary failure.
func (c *Client) ExtractText(ctx context.Context, filename string, pdf []byte) (string, error) {
	if len(pdf) == 0 {
		return "", &ExtractError{Code: ErrEmptyDocument, Message: "empty PDF payload"}
	}

	return withRetry(ctx, c.retry, func(ctx context.Context) (string, error) {
		return c.analyzeOnce(ctx, filename, pdf)
	})
}

func (c *Client) analyzeOnce(ctx context.Context, filename string, pdf []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(pdf); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ExtractError{
			Code:      ErrServiceUnavailable,
			Message:   "extraction service unreachable",
			Retryable: true,
			Cause:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return "", &ExtractError{
			Code:      ErrServiceUnavailable,
			Message:   "reading extraction response",
			Retryable: true,
			Cause:     err,
		}
	}

	if resp.StatusCode >= 500 {
		return "", &ExtractError{
			Code:      ErrServiceUnavailable,
			Message:   fmt.Sprintf("extraction service returned %d", resp.StatusCode),
			Retryable: true,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ExtractError{
			Code:    ErrBadResponse,
			Message: fmt.Sprintf("extraction service returned %d", resp.StatusCode),
		}
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ExtractError{Code: ErrBadResponse, Message: "non-JSON extraction response", Cause: err}
	}
	if parsed.Error != "" {
		return "", &ExtractError{Code: ErrBadResponse, Message: parsed.Error}
	}
	if parsed.Text == "" {
		return "", &ExtractError{Code: ErrBadResponse, Message: "extraction response missing text field"}
	}

	return parsed.Text, nil
}
