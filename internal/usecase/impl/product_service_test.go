package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/docstore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service  usecase.ProductUsecase
	products repository.ProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	products := docstore.NewProductRepository(memory.New())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return productServiceFixtures{
		service:  NewProductService(products, logger),
		products: products,
	}
}

func validProductPayload(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"price":       99.50,
		"description": "a fine item",
		"category": map[string]any{
			"name":     "Electronics",
			"features": []any{"wireless"},
		},
		"inventory": map[string]any{
			"total": float64(5),
		},
	}
}

func TestProductService_Create_StampsOwnership(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Gaming Mouse"))
	require.NoError(t, err)

	assert.Equal(t, "alice", created.OwnerID)
	assert.Equal(t, "alice", created.Metadata.CreatedBy)
	assert.Equal(t, "gaming-mouse", created.Slug)
	assert.NotEmpty(t, created.Category.ID, "category id is assigned server-side")
	assert.Equal(t, "Electronics", created.Category.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductService_Create_ValidationFailure(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Create(context.Background(), "alice", map[string]any{"name": "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations(), 2, "short name and missing price are both reported")
}

func TestProductService_Get_OwnershipChecks(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Keyboard"))
	require.NoError(t, err)

	got, err := fx.service.Get(ctx, created.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = fx.service.Get(ctx, created.ID, "bob")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Get(ctx, "missing-id", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductService_Update_MergesAndReadsBack(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Keyboard"))
	require.NoError(t, err)

	updated, err := fx.service.Update(ctx, created.ID, "alice", map[string]any{
		"price": 120.0,
	})
	require.NoError(t, err)

	assert.InDelta(t, 120.0, updated.Price, 1e-9)
	assert.Equal(t, "Keyboard", updated.Name, "unpatched fields survive")
	assert.Equal(t, "Electronics", updated.Category.Name)
}

func TestProductService_Update_RequiresRecognizedField(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Keyboard"))
	require.NoError(t, err)

	_, err = fx.service.Update(ctx, created.ID, "alice", map[string]any{"bogus": true})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Update_ForbiddenForOtherOwner(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Keyboard"))
	require.NoError(t, err)

	_, err = fx.service.Update(ctx, created.ID, "bob", map[string]any{"price": 1.0})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_Delete(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, "alice", validProductPayload("Keyboard"))
	require.NoError(t, err)

	require.ErrorIs(t, fx.service.Delete(ctx, created.ID, "bob"), domainerrors.ErrForbidden)

	require.NoError(t, fx.service.Delete(ctx, created.ID, "alice"))

	_, err = fx.service.Get(ctx, created.ID, "alice")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductService_List_LenientQueryDefaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.service.Create(ctx, "alice", validProductPayload(fmt.Sprintf("Item %d", i)))
		require.NoError(t, err)
	}

	page, err := fx.service.List(ctx, "alice", &usecase.ListQuery{
		SortBy: "price",     // not in the whitelist, falls back to createdAt
		Order:  "sideways",  // anything but asc means desc
		Limit:  "not-a-num", // default 10
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 3)
	assert.Empty(t, page.NextPageToken)
}

func TestProductService_List_PaginatesWithToken(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.service.Create(ctx, "alice", validProductPayload(fmt.Sprintf("Item %d", i)))
		require.NoError(t, err)
	}

	first, err := fx.service.List(ctx, "alice", &usecase.ListQuery{Limit: "2"})
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	require.NotEmpty(t, first.NextPageToken)

	second, err := fx.service.List(ctx, "alice", &usecase.ListQuery{Limit: "2", PageToken: first.NextPageToken})
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.Empty(t, second.NextPageToken)
}
