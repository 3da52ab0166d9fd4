package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIClient is a thin HTTP client for the dog video factory API.
type APIClient struct {
	baseURL string
	client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

type GenerateResponse struct {
	VideoData   json.RawMessage `json:"videoData,omitempty"`
	OperationID string          `json:"operationId,omitempty"`
	Status      string          `json:"status"`
	Message     string          `json:"message,omitempty"`
}

type UploadRequest struct {
	VideoData   json.RawMessage `json:"videoData,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
}

type UploadResponse struct {
	VideoID  string `json:"videoId"`
	VideoURL string `json:"videoUrl"`
	Status   string `json:"status"`
}

func (c *APIClient) GenerateVideo(ctx context.Context, prompt string) (*GenerateResponse, error) {
	var out GenerateResponse
	if err := c.postJSON(ctx, "/api/generate-video", map[string]string{"prompt": prompt}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UploadVideo(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	var out UploadResponse
	if err := c.postJSON(ctx, "/api/upload-youtube", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthURL is the server route that redirects to the Google consent screen.
func (c *APIClient) AuthURL() string {
	return c.baseURL + "/api/youtube/auth"
}

func (c *APIClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
