package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrUserProfileNotFound is returned when no profile document exists for a uid.
var ErrUserProfileNotFound = errors.New("user profile not found")

// UserProfileRepository persists the lazily-created profile documents keyed
// by the identity provider's uid.
type UserProfileRepository interface {
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create writes a fresh profile with createdAt and lastLoginAt both set
	// to the store timestamp.
	Create(ctx context.Context, uid, email string) error

	// Touch merges a refreshed email and lastLoginAt onto an existing
	// profile without rewriting the rest of the document.
	Touch(ctx context.Context, uid, email string) error
}
