package token_manager

import (
	"dog_video_factory/internal/core/domain"
	"golang.org/x/oauth2"
)

type tokenServiceImpl struct{}

// TokenService turns the stored refresh token into an oauth2.Token. Tokens
// are never written anywhere by this process: the operator keeps the refresh
// token in YOUTUBE_REFRESH_TOKEN.
type TokenService interface {
	LoadToken(creds domain.Credentials) (*oauth2.Token, error)
	ToTokenPair(token *oauth2.Token) domain.TokenPair
}

func NewTokenService() TokenService {
	return &tokenServiceImpl{}
}

func (t *tokenServiceImpl) LoadToken(creds domain.Credentials) (*oauth2.Token, error) {
	if creds.OAuthRefreshToken == "" {
		return nil, domain.ConfigurationMissing("YouTube API credentials not configured")
	}

	// No access token: the TokenSource refreshes on first use.
	return &oauth2.Token{RefreshToken: creds.OAuthRefreshToken}, nil
}

func (t *tokenServiceImpl) ToTokenPair(token *oauth2.Token) domain.TokenPair {
	if token == nil {
		return domain.TokenPair{}
	}
	return domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
}
