package usecases

import (
	"context"
	"strings"

	"dog_video_factory/internal/core/domain"

	"github.com/google/uuid"
)

// Authorize returns the consent URL used to mint a refresh token.
func (uc *shortsUseCase) Authorize() (string, error) {
	creds := uc.resolver.Resolve()
	if err := creds.RequireOAuthClient(); err != nil {
		uc.log.Error("OAuth client credentials missing", err)
		return "", err
	}

	return uc.auth.GenerateAuthURL(creds, uuid.NewString()), nil
}

func (uc *shortsUseCase) ExchangeCode(ctx context.Context, code string) (domain.TokenPair, error) {
	uc.log.Info("Init Exchange Code")

	if strings.TrimSpace(code) == "" {
		return domain.TokenPair{}, domain.InvalidInput("Authorization code not provided")
	}

	creds := uc.resolver.Resolve()
	if err := creds.RequireOAuthClient(); err != nil {
		uc.log.Error("OAuth client credentials missing", err)
		return domain.TokenPair{}, err
	}

	pair, err := uc.auth.ExchangeCodeForToken(ctx, creds, code)
	if err != nil {
		uc.log.Error("Failed to exchange authorization code", err)
		return domain.TokenPair{}, err
	}

	uc.log.Info("Exchange Code done")

	return pair, nil
}
