package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/docstore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	profiles repository.UserProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	profiles := docstore.NewUserProfileRepository(memory.New())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profileServiceFixtures{
		service:  NewProfileService(profiles, logger),
		profiles: profiles,
	}
}

func TestProfileService_EnsureProfile_CreatesOnFirstSight(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	err := fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1", Email: "a@example.com"})
	require.NoError(t, err)

	profile, err := fx.profiles.FindByUID(ctx, "uid-1")
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.False(t, profile.LastLoginAt.IsZero())
}

func TestProfileService_EnsureProfile_TouchesExisting(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1", Email: "a@example.com"}))

	before, err := fx.profiles.FindByUID(ctx, "uid-1")
	require.NoError(t, err)

	require.NoError(t, fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1", Email: "b@example.com"}))

	after, err := fx.profiles.FindByUID(ctx, "uid-1")
	require.NoError(t, err)

	assert.Equal(t, "b@example.com", after.Email)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestProfileService_EnsureProfile_KeepsEmailWhenClaimMissing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1", Email: "a@example.com"}))

	// A token without an email claim must not blank the stored address.
	require.NoError(t, fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1"}))

	profile, err := fx.profiles.FindByUID(ctx, "uid-1")
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", profile.Email)
}
