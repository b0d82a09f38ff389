package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase maintains the lazily-created user profile documents.
type ProfileUsecase interface {
	// EnsureProfile upserts the profile for an authenticated identity:
	// createdAt and lastLoginAt on first sight, otherwise a refreshed email
	// and lastLoginAt. Called fire-and-forget by the auth middleware.
	EnsureProfile(ctx context.Context, identity *entity.Identity) error
}
