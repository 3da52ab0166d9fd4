package domain

import "fmt"

const (
	DefaultTitle       = "Adorable Dog Video"
	DefaultDescription = "AI-generated dog video created with Veo 3.1 #Shorts"
	PetsAndAnimalsID   = "15"
	PrivacyPublic      = "public"

	ShortsHost = "www.youtube.com"
)

func DefaultTags() []string {
	return []string{"dog", "cute", "pets", "animals", "shorts"}
}

type UploadRequest struct {
	Video       VideoPayload
	Title       string
	Description string
	Tags        []string
}

// VideoMetadata is what gets sent to the host next to the media body.
type VideoMetadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Privacy     string
	MadeForKids bool
}

func (r UploadRequest) Validate() error {
	if r.Video.IsZero() {
		return InvalidInput("Video data is required")
	}
	return nil
}

// Metadata fills every field the caller left out with the dog-channel
// defaults. Category, privacy and made-for-kids are never caller-controlled.
func (r UploadRequest) Metadata() VideoMetadata {
	md := VideoMetadata{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		CategoryID:  PetsAndAnimalsID,
		Privacy:     PrivacyPublic,
		MadeForKids: false,
	}
	if md.Title == "" {
		md.Title = DefaultTitle
	}
	if md.Description == "" {
		md.Description = DefaultDescription
	}
	if len(md.Tags) == 0 {
		md.Tags = DefaultTags()
	}
	return md
}

type UploadResult struct {
	VideoID  string
	VideoURL string
}

func NewUploadResult(videoID string) UploadResult {
	return UploadResult{
		VideoID:  videoID,
		VideoURL: ShortsURL(videoID),
	}
}

func ShortsURL(videoID string) string {
	return fmt.Sprintf("https://%s/shorts/%s", ShortsHost, videoID)
}
