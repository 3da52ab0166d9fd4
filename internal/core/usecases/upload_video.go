package usecases

import (
	"context"

	"dog_video_factory/internal/core/domain"
)

func (uc *shortsUseCase) UploadVideo(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	uc.log.Info("Init Upload Video")

	if err := req.Validate(); err != nil {
		return domain.UploadResult{}, err
	}

	creds := uc.resolver.Resolve()
	if err := creds.RequireUpload(); err != nil {
		uc.log.Error("YouTube credentials missing", err)
		return domain.UploadResult{}, err
	}

	media, err := req.Video.Bytes()
	if err != nil {
		uc.log.Error("Failed to normalize video payload", err)
		return domain.UploadResult{}, err
	}

	result, err := uc.youtube.UploadVideo(ctx, creds, media, req.Metadata())
	if err != nil {
		uc.log.Error("Failed to upload video", err)
		return domain.UploadResult{}, err
	}

	uc.log.Info("Upload Video Completed")

	return result, nil
}
