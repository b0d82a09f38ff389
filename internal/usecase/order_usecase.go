package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	List(ctx context.Context, userID string, query *ListQuery) (*OrderPage, error)
	Get(ctx context.Context, id, callerID string) (*entity.Order, error)
	Create(ctx context.Context, userID string, payload map[string]any) (*entity.Order, error)
	Update(ctx context.Context, id, callerID string, payload map[string]any) (*entity.Order, error)
	Delete(ctx context.Context, id, callerID string) error
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Items         []*entity.Order `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}
