package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dog_video_factory/internal/core/domain"
	"dog_video_factory/internal/core/ports"

	"golang.org/x/oauth2"
)

const (
	veoAspectRatio = "9:16" // Shorts
	veoSampleCount = 1
)

// DefaultVeoTimeout caps one generation call.
const DefaultVeoTimeout = 300 * time.Second

type VeoConfig struct {
	BaseURL         string
	Location        string
	Model           string
	DurationSeconds int
	Timeout         time.Duration
}

type veoProvider struct {
	cfg    VeoConfig
	client *http.Client
	log    ports.LoggerPort
}

func NewVeoProvider(cfg VeoConfig, logger ports.LoggerPort) ports.VideoGeneratorPort {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultVeoTimeout
	}
	if cfg.DurationSeconds == 0 {
		cfg.DurationSeconds = 8
	}

	return &veoProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger,
	}
}

type veoRequest struct {
	Instances  []veoInstance `json:"instances"`
	Parameters veoParams     `json:"parameters"`
}

type veoInstance struct {
	Prompt string `json:"prompt"`
}

type veoParams struct {
	SampleCount     int    `json:"sampleCount"`
	AspectRatio     string `json:"aspectRatio"`
	DurationSeconds int    `json:"durationSeconds"`
}

// The service answers either with the finished video or with only an
// operation name, depending on how far it got before replying.
type veoResponse struct {
	Predictions []struct {
		Video json.RawMessage `json:"video"`
	} `json:"predictions"`
	Video       json.RawMessage `json:"video"`
	Name        string          `json:"name"`
	OperationID string          `json:"operationId"`
}

func (p *veoProvider) predictURL(projectID string) string {
	return fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		p.cfg.BaseURL, projectID, p.cfg.Location, p.cfg.Model)
}

func (p *veoProvider) Generate(ctx context.Context, creds domain.Credentials, prompt string) (domain.GenerationResult, error) {
	payload, err := json.Marshal(veoRequest{
		Instances: []veoInstance{{Prompt: prompt}},
		Parameters: veoParams{
			SampleCount:     veoSampleCount,
			AspectRatio:     veoAspectRatio,
			DurationSeconds: p.cfg.DurationSeconds,
		},
	})
	if err != nil {
		return nil, domain.Internal("Failed to encode generation request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.predictURL(creds.ProjectID), bytes.NewReader(payload))
	if err != nil {
		return nil, domain.Internal("Failed to create generation request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// The API key travels as a bearer token.
	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, p.client)
	client := oauth2.NewClient(clientCtx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.APIKey}))

	resp, err := client.Do(httpReq)
	if err != nil {
		p.log.Error("veo request failed", err)
		return nil, domain.Internal("Failed to reach the generation service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Internal("Failed to read generation response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.Error(fmt.Sprintf("veo error: status=%d", resp.StatusCode), fmt.Errorf("%s", body))
		return nil, domain.Upstream(resp.StatusCode, "Failed to generate video with Veo 3.1", string(body))
	}

	var data veoResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, domain.Internal("Failed to decode generation response", err)
	}

	video := data.Video
	if len(data.Predictions) > 0 && present(data.Predictions[0].Video) {
		video = data.Predictions[0].Video
	}
	operationID := data.Name
	if operationID == "" {
		operationID = data.OperationID
	}

	if present(video) {
		p.log.Info(fmt.Sprintf("veo returned a completed video (operation %q)", operationID))
		return domain.Completed{Video: video, OperationID: operationID}, nil
	}
	if operationID != "" {
		p.log.Info(fmt.Sprintf("veo is still processing operation %q", operationID))
		return domain.Processing{OperationID: operationID}, nil
	}

	return nil, domain.Upstream(http.StatusBadGateway, "Generation response carried neither a video nor an operation", string(body))
}

// present treats null and the empty string as missing.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) && !bytes.Equal(trimmed, []byte(`""`))
}
