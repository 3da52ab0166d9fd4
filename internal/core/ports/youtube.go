package ports

import (
	"context"
	"dog_video_factory/internal/core/domain"
)

type YoutubePort interface {
	UploadVideo(ctx context.Context, creds domain.Credentials, media []byte, metadata domain.VideoMetadata) (domain.UploadResult, error)
}
