package docstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/errors"
)

const usersCollection = "users"

// userProfileRepository implements repository.UserProfileRepository over the
// injected DocumentStore. Profile documents are keyed by the identity
// provider's uid rather than a store-assigned id.
type userProfileRepository struct {
	store store.DocumentStore
	col   store.Collection
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(docStore store.DocumentStore) repository.UserProfileRepository {
	return &userProfileRepository{
		store: docStore,
		col:   docStore.Collection(usersCollection),
	}
}

func (repo *userProfileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := repo.col.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return &entity.UserProfile{
		UID:         doc.ID,
		Email:       asString(doc.Data["email"]),
		CreatedAt:   asTime(doc.Data["createdAt"]),
		LastLoginAt: asTime(doc.Data["lastLoginAt"]),
	}, nil
}

func (repo *userProfileRepository) Create(ctx context.Context, uid, email string) error {
	now := repo.store.Now()
	err := repo.col.Set(ctx, uid, map[string]any{
		"email":       email,
		"createdAt":   now,
		"lastLoginAt": now,
	}, false)

	return errors.Wrap(err, "failed to create user profile")
}

func (repo *userProfileRepository) Touch(ctx context.Context, uid, email string) error {
	err := repo.col.Set(ctx, uid, map[string]any{
		"email":       email,
		"lastLoginAt": repo.store.Now(),
	}, true)

	return errors.Wrap(err, "failed to touch user profile")
}
