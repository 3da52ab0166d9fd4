package ports

import (
	"context"
	"dog_video_factory/internal/core/domain"
)

type VideoGeneratorPort interface {
	Generate(ctx context.Context, creds domain.Credentials, prompt string) (domain.GenerationResult, error)
}
