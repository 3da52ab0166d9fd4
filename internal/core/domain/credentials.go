package domain

import "time"

// Credentials are read fresh for every handler invocation and never mutated.
type Credentials struct {
	APIKey            string
	ProjectID         string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRefreshToken string
	OAuthRedirectURI  string
}

func (c Credentials) RequireGeneration() error {
	if c.APIKey == "" {
		return ConfigurationMissing("GOOGLE_API_KEY not configured")
	}
	return nil
}

func (c Credentials) RequireOAuthClient() error {
	if c.OAuthClientID == "" || c.OAuthClientSecret == "" {
		return ConfigurationMissing("YouTube API credentials not configured")
	}
	return nil
}

func (c Credentials) RequireUpload() error {
	if err := c.RequireOAuthClient(); err != nil {
		return err
	}
	if c.OAuthRefreshToken == "" {
		return ConfigurationMissing("YouTube API credentials not configured")
	}
	return nil
}

// TokenPair is handed back to the operator, who stores the refresh token
// in YOUTUBE_REFRESH_TOKEN by hand.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}
