package config

import (
	"testing"

	"dog_video_factory/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_DIR", "API_URL", "GENERATION_BASE_URL", "GENERATION_LOCATION", "GENERATION_MODEL", "GENERATION_DURATION"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "http://localhost:3000", cfg.APIURL)
	assert.Equal(t, "https://us-central1-aiplatform.googleapis.com", cfg.GenerationBaseURL)
	assert.Equal(t, "us-central1", cfg.GenerationLocation)
	assert.Equal(t, "veo-3.1", cfg.GenerationModel)
	assert.Equal(t, 8, cfg.GenerationSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("API_URL", "http://factory.local/")
	t.Setenv("GENERATION_DURATION", "PT1M")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://factory.local", cfg.APIURL)
	assert.Equal(t, 60, cfg.GenerationSeconds)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("GENERATION_DURATION", "eight seconds")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT8S", 8},
		{"PT4.5S", 5},
		{"PT1M30S", 90},
	}
	for _, tt := range tests {
		got, err := ParseDurationSeconds(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDurationSeconds("PT0S")
	assert.Error(t, err)
}

func TestEnvResolver_ReadsAtCallTime(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_PROJECT_ID", "")
	t.Setenv("YOUTUBE_REDIRECT_URI", "")
	t.Setenv("YOUTUBE_REFRESH_TOKEN", "")

	var r EnvResolver
	creds := r.Resolve()
	assert.Empty(t, creds.APIKey)
	assert.Equal(t, "your-project", creds.ProjectID)
	assert.Equal(t, "http://localhost:3000/api/youtube/callback", creds.OAuthRedirectURI)

	t.Setenv("GOOGLE_API_KEY", "key-1")
	t.Setenv("YOUTUBE_REFRESH_TOKEN", "refresh-1")
	creds = r.Resolve()
	assert.Equal(t, "key-1", creds.APIKey)
	assert.Equal(t, "refresh-1", creds.OAuthRefreshToken)
}

func TestStaticResolver(t *testing.T) {
	want := domain.Credentials{APIKey: "k", OAuthClientID: "id"}
	assert.Equal(t, want, StaticResolver(want).Resolve())
}
