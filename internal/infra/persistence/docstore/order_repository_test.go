package docstore

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(user string) *entity.Order {
	return &entity.Order{
		UserID: user,
		Products: []entity.OrderLine{
			{
				ProductID:       "prod-1",
				ProductName:     "Mouse",
				Quantity:        2,
				PriceAtPurchase: 49.99,
				ProductSnapshot: map[string]any{"name": "Mouse"},
			},
		},
		Status: "processing",
		Shipping: entity.ShippingInfo{
			Address: "Unirii 10",
			City:    "Bucharest",
		},
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	created, err := repo.Create(ctx, testOrder("alice"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice", found.UserID)
	require.Len(t, found.Products, 1)
	assert.Equal(t, "prod-1", found.Products[0].ProductID)
	assert.Equal(t, int64(2), found.Products[0].Quantity)
	assert.InDelta(t, 49.99, found.Products[0].PriceAtPurchase, 1e-9)
	assert.Equal(t, "Mouse", found.Products[0].ProductSnapshot["name"])
	assert.Equal(t, "processing", found.Status)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestOrderRepository_FindMissing(t *testing.T) {
	repo := NewOrderRepository(memory.New())

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateShippingSubfield(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	created, err := repo.Create(ctx, testOrder("alice"))
	require.NoError(t, err)

	tracking := "TRK-42"
	require.NoError(t, repo.Update(ctx, created.ID, &repository.OrderPatch{ShippingTracking: &tracking}))

	updated, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "TRK-42", updated.Shipping.Tracking)
	assert.Equal(t, "Unirii 10", updated.Shipping.Address, "unpatched shipping fields must survive")
	assert.Equal(t, "Bucharest", updated.Shipping.City)
	require.Len(t, updated.Products, 1, "line items are immutable through updates")
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	created, err := repo.Create(ctx, testOrder("alice"))
	require.NoError(t, err)

	status := "delivered"
	require.NoError(t, repo.Update(ctx, created.ID, &repository.OrderPatch{Status: &status}))

	updated, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status)
}

func TestOrderRepository_ListScopedToUser(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, testOrder("alice"))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, testOrder("bob"))
	require.NoError(t, err)

	items, next, err := repo.List(ctx, "alice", repository.ListOptions{SortBy: "createdAt", Limit: 10})
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Empty(t, next)
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	created, err := repo.Create(ctx, testOrder("alice"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
