package domain

import (
	"encoding/json"
	"strings"
)

const (
	GenerationStatusCompleted  = "completed"
	GenerationStatusProcessing = "processing"
)

type GenerationRequest struct {
	Prompt string
}

func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return InvalidInput("Prompt is required")
	}
	return nil
}

// GenerationResult is either Completed or Processing.
type GenerationResult interface {
	Status() string
	Operation() string
	isGenerationResult()
}

// Completed holds the video blob exactly as the generation service returned it.
type Completed struct {
	Video       json.RawMessage
	OperationID string
}

func (Completed) Status() string { return GenerationStatusCompleted }
func (c Completed) Operation() string { return c.OperationID }
func (Completed) isGenerationResult() {}

// Processing means the service accepted the prompt but has no video yet.
// Following the operation up is left to the caller.
type Processing struct {
	OperationID string
}

func (Processing) Status() string { return GenerationStatusProcessing }
func (p Processing) Operation() string { return p.OperationID }
func (Processing) isGenerationResult() {}
