package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderPatch is a partial order mutation. Shipping sub-fields merge onto the
// stored shipping object field by field.
type OrderPatch struct {
	Status *string

	ShippingAddress  *string
	ShippingCity     *string
	ShippingTracking *string
}

// Empty reports whether the patch would touch no fields.
func (p *OrderPatch) Empty() bool {
	return p.Status == nil && p.ShippingAddress == nil &&
		p.ShippingCity == nil && p.ShippingTracking == nil
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// List returns one page of the user's orders plus the continuation token
	// for the next page ("" when the collection is exhausted).
	List(ctx context.Context, userID string, opts ListOptions) ([]*entity.Order, string, error)

	// Create persists a new order and returns it as stored.
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)

	Update(ctx context.Context, id string, patch *OrderPatch) error

	Delete(ctx context.Context, id string) error
}
