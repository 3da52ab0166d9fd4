package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dog_video_factory/infrastructure/token_manager"
	"dog_video_factory/internal/core/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

type authenticationServiceImpl struct {
	scopes       []string
	endpoint     oauth2.Endpoint
	tokenService token_manager.TokenService
}

type AuthenticationService interface {
	GenerateAuthURL(creds domain.Credentials, state string) string
	ExchangeCodeForToken(ctx context.Context, creds domain.Credentials, code string) (domain.TokenPair, error)
	GetAuthenticatedClient(ctx context.Context, creds domain.Credentials) (*http.Client, error)
}

// DefaultScopes are requested on the consent screen.
func DefaultScopes() []string {
	return []string{youtube.YoutubeUploadScope, youtube.YoutubeScope}
}

// NewAuthenticationService builds the service against Google's endpoint.
// Tests pass their own endpoint through NewAuthenticationServiceWithEndpoint.
func NewAuthenticationService(scopes []string, tokenService token_manager.TokenService) AuthenticationService {
	return NewAuthenticationServiceWithEndpoint(scopes, google.Endpoint, tokenService)
}

func NewAuthenticationServiceWithEndpoint(scopes []string, endpoint oauth2.Endpoint, tokenService token_manager.TokenService) AuthenticationService {
	return &authenticationServiceImpl{
		scopes:       scopes,
		endpoint:     endpoint,
		tokenService: tokenService,
	}
}

// The oauth2 config is rebuilt per call because credentials are resolved
// per request.
func (a *authenticationServiceImpl) oauthConfig(creds domain.Credentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.OAuthClientID,
		ClientSecret: creds.OAuthClientSecret,
		RedirectURL:  creds.OAuthRedirectURI,
		Scopes:       a.scopes,
		Endpoint:     a.endpoint,
	}
}

func (a *authenticationServiceImpl) GenerateAuthURL(creds domain.Credentials, state string) string {
	return a.oauthConfig(creds).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (a *authenticationServiceImpl) ExchangeCodeForToken(ctx context.Context, creds domain.Credentials, code string) (domain.TokenPair, error) {
	token, err := a.oauthConfig(creds).Exchange(ctx, code)
	if err != nil {
		return domain.TokenPair{}, tokenEndpointError("Failed to exchange authorization code", err)
	}

	return a.tokenService.ToTokenPair(token), nil
}

// GetAuthenticatedClient refreshes the configured refresh token once up
// front so an expired or revoked token fails before any media is sent.
func (a *authenticationServiceImpl) GetAuthenticatedClient(ctx context.Context, creds domain.Credentials) (*http.Client, error) {
	token, err := a.tokenService.LoadToken(creds)
	if err != nil {
		return nil, err
	}

	tokenSource := a.oauthConfig(creds).TokenSource(ctx, token)
	refreshedToken, err := tokenSource.Token()
	if err != nil {
		return nil, tokenEndpointError("Failed to refresh YouTube access token", err)
	}

	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(refreshedToken, tokenSource)), nil
}

func tokenEndpointError(msg string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return domain.Upstream(retrieveErr.Response.StatusCode, msg, string(retrieveErr.Body))
	}
	return domain.Upstream(http.StatusInternalServerError, msg, fmt.Sprintf("%v", err))
}
