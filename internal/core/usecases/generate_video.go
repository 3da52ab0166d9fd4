package usecases

import (
	"context"
	"fmt"

	"dog_video_factory/internal/core/domain"
)

func (uc *shortsUseCase) GenerateVideo(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	uc.log.Info("Init Generate Video")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	creds := uc.resolver.Resolve()
	if err := creds.RequireGeneration(); err != nil {
		uc.log.Error("Generation credentials missing", err)
		return nil, err
	}

	uc.log.Info(fmt.Sprintf("Generating video with prompt: %s", req.Prompt))

	result, err := uc.generator.Generate(ctx, creds, req.Prompt)
	if err != nil {
		uc.log.Error("Failed to generate video", err)
		return nil, err
	}

	uc.log.Info(fmt.Sprintf("Generate Video done (status %s)", result.Status()))

	return result, nil
}
