package usecases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"dog_video_factory/infrastructure/config"
	"dog_video_factory/infrastructure/logger"
	"dog_video_factory/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type fakeGenerator struct {
	result domain.GenerationResult
	err    error
	calls  int
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, _ domain.Credentials, prompt string) (domain.GenerationResult, error) {
	f.calls++
	f.prompt = prompt
	return f.result, f.err
}

type fakeYoutube struct {
	err      error
	calls    int
	media    []byte
	metadata domain.VideoMetadata
}

func (f *fakeYoutube) UploadVideo(_ context.Context, _ domain.Credentials, media []byte, metadata domain.VideoMetadata) (domain.UploadResult, error) {
	f.calls++
	f.media = media
	f.metadata = metadata
	if f.err != nil {
		return domain.UploadResult{}, f.err
	}
	return domain.NewUploadResult("vid-42"), nil
}

type fakeAuth struct {
	pair          domain.TokenPair
	err           error
	exchangeCalls int
	state         string
}

func (f *fakeAuth) GenerateAuthURL(creds domain.Credentials, state string) string {
	f.state = state
	return "https://accounts.example.com/auth?client_id=" + url.QueryEscape(creds.OAuthClientID) + "&state=" + state
}

func (f *fakeAuth) ExchangeCodeForToken(context.Context, domain.Credentials, string) (domain.TokenPair, error) {
	f.exchangeCalls++
	return f.pair, f.err
}

var fullCreds = config.StaticResolver{
	APIKey:            "key",
	ProjectID:         "dogs",
	OAuthClientID:     "cid",
	OAuthClientSecret: "secret",
	OAuthRefreshToken: "1//refresh",
	OAuthRedirectURI:  "http://localhost:3000/api/youtube/callback",
}

type fixture struct {
	gen *fakeGenerator
	yt  *fakeYoutube
	au  *fakeAuth
	uc  ShortsUseCase
}

func newFixture(creds config.StaticResolver) *fixture {
	f := &fixture{
		gen: &fakeGenerator{result: domain.Completed{Video: json.RawMessage(`"AAEC"`), OperationID: "op-1"}},
		yt:  &fakeYoutube{},
		au:  &fakeAuth{},
	}
	f.uc = NewShortsUseCase(creds, f.gen, f.yt, f.au, logger.NewNop())
	return f
}

func TestGenerateVideo(t *testing.T) {
	f := newFixture(fullCreds)

	res, err := f.uc.GenerateVideo(context.Background(), domain.GenerationRequest{Prompt: "A corgi running on the beach at sunset"})
	require.NoError(t, err)

	assert.Equal(t, domain.GenerationStatusCompleted, res.Status())
	assert.Equal(t, "op-1", res.Operation())
	assert.Equal(t, 1, f.gen.calls)
	assert.Equal(t, "A corgi running on the beach at sunset", f.gen.prompt)
}

func TestGenerateVideo_Failures(t *testing.T) {
	tests := []struct {
		name     string
		creds    config.StaticResolver
		prompt   string
		genErr   error
		wantKind domain.ErrorKind
		wantMsg  string
		wantCall int
	}{
		{
			name:     "blank prompt",
			creds:    fullCreds,
			prompt:   "   ",
			wantKind: domain.KindInvalidInput,
			wantMsg:  "Prompt is required",
		},
		{
			name:     "missing api key",
			creds:    config.StaticResolver{ProjectID: "dogs"},
			prompt:   "a pug",
			wantKind: domain.KindConfigurationMissing,
			wantMsg:  "GOOGLE_API_KEY not configured",
		},
		{
			name:     "upstream failure passes through",
			creds:    fullCreds,
			prompt:   "a pug",
			genErr:   domain.Upstream(http.StatusTooManyRequests, "Failed to generate video with Veo 3.1", `{"error":"quota"}`),
			wantKind: domain.KindUpstream,
			wantMsg:  "Failed to generate video with Veo 3.1",
			wantCall: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.creds)
			f.gen.err = tt.genErr

			_, err := f.uc.GenerateVideo(context.Background(), domain.GenerationRequest{Prompt: tt.prompt})

			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, tt.wantCall, f.gen.calls)
		})
	}
}

func TestGenerateVideo_WhitespacePromptsNeverReachGenerator(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prompt := rapid.StringOf(rapid.SampledFrom([]rune{' ', '\t', '\n', '\r'})).Draw(t, "prompt")

		f := newFixture(fullCreds)
		_, err := f.uc.GenerateVideo(context.Background(), domain.GenerationRequest{Prompt: prompt})

		if domain.KindOf(err) != domain.KindInvalidInput {
			t.Fatalf("expected InvalidInput for %q, got %v", prompt, err)
		}
		if f.gen.calls != 0 {
			t.Fatalf("generator called %d times", f.gen.calls)
		}
	})
}

func TestUploadVideo(t *testing.T) {
	f := newFixture(fullCreds)

	res, err := f.uc.UploadVideo(context.Background(), domain.UploadRequest{
		Video: domain.TextPayload("AAEC"),
		Title: "Beach corgi",
		Tags:  []string{"corgi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "vid-42", res.VideoID)
	assert.Equal(t, "https://www.youtube.com/shorts/vid-42", res.VideoURL)
	assert.Equal(t, 1, f.yt.calls)
	assert.Equal(t, []byte{0, 1, 2}, f.yt.media)
	assert.Equal(t, "Beach corgi", f.yt.metadata.Title)
	assert.Equal(t, domain.DefaultDescription, f.yt.metadata.Description)
	assert.Equal(t, []string{"corgi"}, f.yt.metadata.Tags)
	assert.Equal(t, domain.PetsAndAnimalsID, f.yt.metadata.CategoryID)
	assert.Equal(t, domain.PrivacyPublic, f.yt.metadata.Privacy)
	assert.False(t, f.yt.metadata.MadeForKids)
}

func TestUploadVideo_Failures(t *testing.T) {
	noRefresh := fullCreds
	noRefresh.OAuthRefreshToken = ""

	tests := []struct {
		name     string
		creds    config.StaticResolver
		video    domain.VideoPayload
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{
			name:     "missing video",
			creds:    fullCreds,
			wantKind: domain.KindInvalidInput,
			wantMsg:  "Video data is required",
		},
		{
			name:     "missing refresh token",
			creds:    noRefresh,
			video:    domain.TextPayload("AAEC"),
			wantKind: domain.KindConfigurationMissing,
			wantMsg:  "YouTube API credentials not configured",
		},
		{
			name:     "missing client",
			creds:    config.StaticResolver{OAuthRefreshToken: "1//refresh"},
			video:    domain.TextPayload("AAEC"),
			wantKind: domain.KindConfigurationMissing,
			wantMsg:  "YouTube API credentials not configured",
		},
		{
			name:     "undecodable base64",
			creds:    fullCreds,
			video:    domain.TextPayload("%%%"),
			wantKind: domain.KindInternal,
			wantMsg:  "Failed to decode video data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.creds)

			_, err := f.uc.UploadVideo(context.Background(), domain.UploadRequest{Video: tt.video})

			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Zero(t, f.yt.calls)
		})
	}
}

func TestAuthorize(t *testing.T) {
	f := newFixture(fullCreds)

	authURL, err := f.uc.Authorize()
	require.NoError(t, err)
	assert.Contains(t, authURL, "client_id=cid")
	assert.NotEmpty(t, f.au.state)

	_, err = newFixture(config.StaticResolver{}).uc.Authorize()
	assert.Equal(t, domain.KindConfigurationMissing, domain.KindOf(err))
}

func TestExchangeCode(t *testing.T) {
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	f := newFixture(fullCreds)
	f.au.pair = domain.TokenPair{AccessToken: "ya29", RefreshToken: "1//new", Expiry: expiry}

	pair, err := f.uc.ExchangeCode(context.Background(), "4/code")
	require.NoError(t, err)
	assert.Equal(t, "1//new", pair.RefreshToken)
	assert.Equal(t, expiry, pair.Expiry)
	assert.Equal(t, 1, f.au.exchangeCalls)
}

func TestExchangeCode_Failures(t *testing.T) {
	tests := []struct {
		name     string
		creds    config.StaticResolver
		code     string
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{
			name:     "empty code",
			creds:    fullCreds,
			wantKind: domain.KindInvalidInput,
			wantMsg:  "Authorization code not provided",
		},
		{
			name:     "missing client",
			creds:    config.StaticResolver{},
			code:     "4/code",
			wantKind: domain.KindConfigurationMissing,
			wantMsg:  "YouTube API credentials not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.creds)

			_, err := f.uc.ExchangeCode(context.Background(), tt.code)

			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Zero(t, f.au.exchangeCalls)
		})
	}
}
