package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"dog_video_factory/infrastructure/auth"
	"dog_video_factory/internal/core/domain"
	"dog_video_factory/internal/core/ports"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type youtubeProvider struct {
	authService auth.AuthenticationService
	log         ports.LoggerPort
	extraOpts   []option.ClientOption
}

// NewYoutubeProvider takes extra client options so tests can point the
// service at a local endpoint.
func NewYoutubeProvider(authService auth.AuthenticationService, logger ports.LoggerPort, opts ...option.ClientOption) ports.YoutubePort {
	return &youtubeProvider{
		authService: authService,
		log:         logger,
		extraOpts:   opts,
	}
}

// A service is built per upload since the refresh token is read per request.
func (s *youtubeProvider) getYoutubeService(ctx context.Context, creds domain.Credentials) (*youtube.Service, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx, creds)
	if err != nil {
		s.log.Error("error while getting authenticated client", err)
		return nil, err
	}

	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, s.extraOpts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, domain.Internal("Failed to create YouTube service", err)
	}

	return service, nil
}

func (s *youtubeProvider) UploadVideo(ctx context.Context, creds domain.Credentials, media []byte, metadata domain.VideoMetadata) (domain.UploadResult, error) {
	service, err := s.getYoutubeService(ctx, creds)
	if err != nil {
		return domain.UploadResult{}, err
	}

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       metadata.Title,
			Description: metadata.Description,
			Tags:        metadata.Tags,
			CategoryId:  metadata.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           metadata.Privacy,
			SelfDeclaredMadeForKids: metadata.MadeForKids,
			// false is the zero value and would otherwise be dropped
			ForceSendFields: []string{"SelfDeclaredMadeForKids"},
		},
	}

	s.log.Info(fmt.Sprintf("Uploading %q (%.2f MB)", metadata.Title, float64(len(media))/(1024*1024)))

	call := service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(bytes.NewReader(media)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		s.log.Error("error in call youtube api", err)

		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			details := apiErr.Body
			if details == "" {
				details = apiErr.Message
			}
			return domain.UploadResult{}, domain.Upstream(apiErr.Code, "Failed to upload to YouTube", details)
		}
		return domain.UploadResult{}, domain.Internal("Failed to upload to YouTube", err)
	}

	result := domain.NewUploadResult(response.Id)
	s.log.Info(fmt.Sprintf("Uploaded! %s", result.VideoURL))

	return result, nil
}
