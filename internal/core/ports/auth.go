package ports

import (
	"context"
	"dog_video_factory/internal/core/domain"
)

type AuthPort interface {
	GenerateAuthURL(creds domain.Credentials, state string) string
	ExchangeCodeForToken(ctx context.Context, creds domain.Credentials, code string) (domain.TokenPair, error)
}
