// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUsecase defines the interface for product-related business operations.
// Every operation except Create is restricted to the identity that created
// the product.
type ProductUsecase interface {
	List(ctx context.Context, ownerID string, query *ListQuery) (*ProductPage, error)
	Get(ctx context.Context, id, callerID string) (*entity.Product, error)
	Create(ctx context.Context, ownerID string, payload map[string]any) (*entity.Product, error)
	Update(ctx context.Context, id, callerID string, payload map[string]any) (*entity.Product, error)
	Delete(ctx context.Context, id, callerID string) error
}

// --- Input DTOs ---

// ListQuery carries raw list parameters as received from the transport.
// Normalization (sort whitelist, limit clamping) happens in the usecase.
type ListQuery struct {
	SortBy    string
	Order     string
	Limit     string
	PageToken string
}

// ProductPage is one page of a product listing. NextPageToken is empty when
// the listing is exhausted.
type ProductPage struct {
	Items         []*entity.Product `json:"items"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}
