package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles repository.UserProfileRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profiles repository.UserProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

// EnsureProfile upserts the profile document for an authenticated identity.
// First sight creates the document with createdAt and lastLoginAt; later
// requests merge a refreshed lastLoginAt and email. An identity without an
// email claim keeps the previously stored address.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *entity.Identity) error {
	existing, err := srv.profiles.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserProfileNotFound) {
			srv.logger.Debug("creating user profile", "uid", identity.UID)

			return errors.Wrap(srv.profiles.Create(ctx, identity.UID, identity.Email), "failed to create user profile")
		}

		return errors.Wrap(err, "failed to find user profile")
	}

	email := identity.Email
	if email == "" {
		email = existing.Email
	}

	return errors.Wrap(srv.profiles.Touch(ctx, identity.UID, email), "failed to touch user profile")
}
