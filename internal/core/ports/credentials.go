package ports

import "dog_video_factory/internal/core/domain"

// CredentialResolver is consulted at the start of every handler invocation.
type CredentialResolver interface {
	Resolve() domain.Credentials
}
