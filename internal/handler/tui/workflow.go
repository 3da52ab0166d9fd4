package tui

import (
	"context"
	"errors"
	"strings"

	"dog_video_factory/infrastructure/logger"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle       = "Adorable Dog Video"
	defaultDescription = "AI-generated dog video created with Veo 3.1"
	defaultTagsField   = "dog, cute, pets, animals"

	generateFailedMsg = "Failed to generate video"
	uploadFailedMsg   = "Failed to upload to YouTube"
)

type workflowState int

const (
	stateIdle workflowState = iota
	stateGenerating
	stateUploading
	stateSucceeded
	stateFailed
)

func (s workflowState) loading() bool {
	return s == stateGenerating || s == stateUploading
}

func (s workflowState) String() string {
	switch s {
	case stateGenerating:
		return "generating"
	case stateUploading:
		return "uploading"
	case stateSucceeded:
		return "succeeded"
	case stateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// submission is the form as it was when the trigger fired.
type submission struct {
	prompt      string
	title       string
	description string
	tags        []string
}

type videoGeneratedMsg struct{ resp *GenerateResponse }
type videoUploadedMsg struct{ resp *UploadResponse }
type workflowErrorMsg struct{ err error }

func parseTags(field string) []string {
	var tags []string
	for _, t := range strings.Split(field, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// userFacing hides HTTP details behind the step's fixed message; transport
// errors are shown as they are.
func userFacing(err error, stepMsg string) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return errors.New(stepMsg)
	}
	return err
}

func generateCmd(ctx context.Context, client *APIClient, log logger.Logger, prompt string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GenerateVideo(ctx, prompt)
		if err != nil {
			log.Error("generate-video failed", err)
			return workflowErrorMsg{err: userFacing(err, generateFailedMsg)}
		}
		return videoGeneratedMsg{resp: resp}
	}
}

func uploadCmd(ctx context.Context, client *APIClient, log logger.Logger, s submission, generated *GenerateResponse) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.UploadVideo(ctx, UploadRequest{
			VideoData:   generated.VideoData,
			Title:       s.title,
			Description: s.description,
			Tags:        s.tags,
		})
		if err != nil {
			log.Error("upload-youtube failed", err)
			return workflowErrorMsg{err: userFacing(err, uploadFailedMsg)}
		}
		return videoUploadedMsg{resp: resp}
	}
}
