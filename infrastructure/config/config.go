package config

import (
	"fmt"
	"os"
	"strings"

	"dog_video_factory/internal/core/domain"

	"github.com/joho/godotenv"
	"github.com/sosodev/duration"
)

const (
	defaultPort               = "3000"
	defaultLogDir             = "logs"
	defaultProjectID          = "your-project"
	defaultRedirectURI        = "http://localhost:3000/api/youtube/callback"
	defaultGenerationBaseURL  = "https://us-central1-aiplatform.googleapis.com"
	defaultGenerationLocation = "us-central1"
	defaultGenerationModel    = "veo-3.1"
	defaultGenerationDuration = "PT8S"
)

// Config holds process settings. Credentials are not part of it; they go
// through a CredentialResolver on every request.
type Config struct {
	Port   string
	LogDir string
	APIURL string

	GenerationBaseURL  string
	GenerationLocation string
	GenerationModel    string
	GenerationSeconds  int
}

// LoadDotEnv loads .env if present. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func Load() (Config, error) {
	cfg := Config{
		Port:               env("PORT", defaultPort),
		LogDir:             env("LOG_DIR", defaultLogDir),
		GenerationBaseURL:  strings.TrimRight(env("GENERATION_BASE_URL", defaultGenerationBaseURL), "/"),
		GenerationLocation: env("GENERATION_LOCATION", defaultGenerationLocation),
		GenerationModel:    env("GENERATION_MODEL", defaultGenerationModel),
	}
	cfg.APIURL = strings.TrimRight(env("API_URL", "http://localhost:"+cfg.Port), "/")

	seconds, err := ParseDurationSeconds(env("GENERATION_DURATION", defaultGenerationDuration))
	if err != nil {
		return Config{}, err
	}
	cfg.GenerationSeconds = seconds

	return cfg, nil
}

// ParseDurationSeconds turns an ISO-8601 duration such as PT8S into whole
// seconds, rounding up.
func ParseDurationSeconds(iso string) (int, error) {
	d, err := duration.Parse(iso)
	if err != nil {
		return 0, fmt.Errorf("invalid GENERATION_DURATION %q: %w", iso, err)
	}
	td := d.ToTimeDuration()
	if td <= 0 {
		return 0, fmt.Errorf("GENERATION_DURATION must be positive, got %q", iso)
	}
	seconds := int(td.Seconds())
	if float64(seconds) < td.Seconds() {
		seconds++
	}
	return seconds, nil
}

func env(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

// EnvResolver reads credentials from the process environment each time it
// is asked, so a refresh token pasted into the environment is picked up
// without a restart.
type EnvResolver struct{}

func (EnvResolver) Resolve() domain.Credentials {
	return domain.Credentials{
		APIKey:            strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		ProjectID:         env("GOOGLE_PROJECT_ID", defaultProjectID),
		OAuthClientID:     strings.TrimSpace(os.Getenv("YOUTUBE_CLIENT_ID")),
		OAuthClientSecret: strings.TrimSpace(os.Getenv("YOUTUBE_CLIENT_SECRET")),
		OAuthRefreshToken: strings.TrimSpace(os.Getenv("YOUTUBE_REFRESH_TOKEN")),
		OAuthRedirectURI:  env("YOUTUBE_REDIRECT_URI", defaultRedirectURI),
	}
}

// StaticResolver always returns the same credentials.
type StaticResolver domain.Credentials

func (s StaticResolver) Resolve() domain.Credentials {
	return domain.Credentials(s)
}
