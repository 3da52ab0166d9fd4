package usecases

import (
	"context"

	"dog_video_factory/internal/core/domain"
	"dog_video_factory/internal/core/ports"
)

type shortsUseCase struct {
	resolver  ports.CredentialResolver
	generator ports.VideoGeneratorPort
	youtube   ports.YoutubePort
	auth      ports.AuthPort
	log       ports.LoggerPort
}

type ShortsUseCase interface {
	GenerateVideo(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error)
	UploadVideo(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	Authorize() (string, error)
	ExchangeCode(ctx context.Context, code string) (domain.TokenPair, error)
}

func NewShortsUseCase(
	resolver ports.CredentialResolver,
	generator ports.VideoGeneratorPort,
	youtube ports.YoutubePort,
	auth ports.AuthPort,
	logger ports.LoggerPort,
) ShortsUseCase {
	return &shortsUseCase{
		resolver:  resolver,
		generator: generator,
		youtube:   youtube,
		auth:      auth,
		log:       logger,
	}
}
