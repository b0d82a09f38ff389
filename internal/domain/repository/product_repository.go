package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductPatch is a partial product mutation. Nil fields are left untouched;
// category and inventory sub-fields merge onto the stored nested objects
// rather than replacing them wholesale.
type ProductPatch struct {
	Name        *string
	Slug        *string // recomputed alongside Name, never set independently
	Price       *float64
	Description *string

	CategoryName     *string
	CategoryFeatures *[]string

	InventoryTotal     *int64
	InventoryLocations *[]entity.StockLocation
}

// Empty reports whether the patch would touch no fields.
func (p *ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil &&
		p.CategoryName == nil && p.CategoryFeatures == nil &&
		p.InventoryTotal == nil && p.InventoryLocations == nil
}

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product by its store-assigned id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns one page of the owner's products plus the continuation
	// token for the next page ("" when the collection is exhausted).
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*entity.Product, string, error)

	// Create persists a new product and returns it as stored, including the
	// generated id and server-assigned timestamps.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Update applies a partial mutation and refreshes the update timestamps.
	Update(ctx context.Context, id string, patch *ProductPatch) error

	// Delete removes a product permanently.
	Delete(ctx context.Context, id string) error
}
