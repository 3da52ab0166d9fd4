package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dog_video_factory/infrastructure/logger"
	"dog_video_factory/internal/core/domain"
	"dog_video_factory/internal/core/usecases"

	"github.com/gin-gonic/gin"
)

const refreshTokenHint = "Save the refresh_token to your .env file as YOUTUBE_REFRESH_TOKEN"

type handlers struct {
	uc      usecases.ShortsUseCase
	log     logger.Logger
	metrics *Metrics
}

type generateVideoRequest struct {
	Prompt string `json:"prompt"`
}

type generateVideoResponse struct {
	VideoData   json.RawMessage `json:"videoData,omitempty"`
	OperationID string          `json:"operationId,omitempty"`
	Status      string          `json:"status"`
	Message     string          `json:"message,omitempty"`
}

type uploadYoutubeRequest struct {
	VideoData   domain.VideoPayload `json:"videoData"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Tags        []string            `json:"tags"`
}

type uploadYoutubeResponse struct {
	VideoID  string `json:"videoId"`
	VideoURL string `json:"videoUrl"`
	Status   string `json:"status"`
}

type callbackResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiryDate   *int64 `json:"expiry_date,omitempty"`
	Message      string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// upstreamContext detaches the request from client cancellation; an upload
// that already started runs to completion.
func upstreamContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func (h *handlers) generateVideo(c *gin.Context) {
	var req generateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, invalidBody(err), "Internal server error")
		return
	}

	result, err := h.uc.GenerateVideo(upstreamContext(c), domain.GenerationRequest{Prompt: req.Prompt})
	if err != nil {
		h.respondError(c, err, "Internal server error")
		return
	}

	switch r := result.(type) {
	case domain.Completed:
		c.JSON(http.StatusOK, generateVideoResponse{
			VideoData:   r.Video,
			OperationID: r.OperationID,
			Status:      domain.GenerationStatusCompleted,
		})
	case domain.Processing:
		c.JSON(http.StatusOK, generateVideoResponse{
			OperationID: r.OperationID,
			Status:      domain.GenerationStatusProcessing,
			Message:     "Video generation in progress",
		})
	default:
		h.respondError(c, fmt.Errorf("unexpected generation result %T", result), "Internal server error")
	}
}

func (h *handlers) uploadYoutube(c *gin.Context) {
	var req uploadYoutubeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, invalidBody(err), "Failed to upload to YouTube")
		return
	}

	result, err := h.uc.UploadVideo(upstreamContext(c), domain.UploadRequest{
		Video:       req.VideoData,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		h.respondError(c, err, "Failed to upload to YouTube")
		return
	}

	c.JSON(http.StatusOK, uploadYoutubeResponse{
		VideoID:  result.VideoID,
		VideoURL: result.VideoURL,
		Status:   "uploaded",
	})
}

func (h *handlers) youtubeAuth(c *gin.Context) {
	authURL, err := h.uc.Authorize()
	if err != nil {
		h.respondError(c, err, "Failed to generate authentication URL")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *handlers) youtubeCallback(c *gin.Context) {
	pair, err := h.uc.ExchangeCode(upstreamContext(c), c.Query("code"))
	if err != nil {
		h.respondError(c, err, "Failed to exchange authorization code")
		return
	}

	resp := callbackResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Message:      refreshTokenHint,
	}
	if !pair.Expiry.IsZero() {
		ms := pair.Expiry.UnixMilli()
		resp.ExpiryDate = &ms
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func invalidBody(err error) error {
	return &domain.AppError{
		Kind:    domain.KindInvalidInput,
		Message: "Invalid request body",
		Details: err.Error(),
		Err:     err,
	}
}

// respondError is the single place errors become HTTP responses. Internal
// errors are reported under the route's fallback message.
func (h *handlers) respondError(c *gin.Context, err error, fallbackMsg string) {
	appErr := domain.AsAppError(err, fallbackMsg)

	resp := errorResponse{Error: appErr.Message, Details: appErr.Details}
	if appErr.Kind == domain.KindInternal && appErr.Message != fallbackMsg {
		resp.Error = fallbackMsg
		resp.Details = appErr.Message
		if appErr.Details != "" {
			resp.Details += ": " + appErr.Details
		}
	}

	h.log.Error(fmt.Sprintf("%s %s failed (%s)", c.Request.Method, c.FullPath(), appErr.Kind), err)
	h.metrics.requestFailures.WithLabelValues(c.FullPath(), appErr.Kind.String()).Inc()

	c.JSON(appErr.HTTPStatus(), resp)
}
