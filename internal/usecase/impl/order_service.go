package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/pkg/errors"
)

// orderSortFields are the sort keys the list operation accepts.
var orderSortFields = []string{"createdAt", "updatedAt", "status"}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// List returns one page of the user's orders.
func (srv *orderService) List(ctx context.Context, userID string, query *usecase.ListQuery) (*usecase.OrderPage, error) {
	opts := validation.NormalizeListOptions(query.SortBy, query.Order, query.Limit, query.PageToken, orderSortFields)

	items, next, err := srv.orders.List(ctx, userID, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Items: items, NextPageToken: next}, nil
}

// Get returns a single order after checking the caller owns it.
func (srv *orderService) Get(ctx context.Context, id, callerID string) (*entity.Order, error) {
	return srv.findOwned(ctx, id, callerID)
}

// Create validates the payload, resolves line-item display names from the
// catalog and persists the order. Quantity and price are fixed here and
// never recomputed from current product state.
func (srv *orderService) Create(ctx context.Context, userID string, payload map[string]any) (*entity.Order, error) {
	in, err := validation.OrderCreate(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.resolveProductNames(ctx, in.Products)

	order := &entity.Order{
		UserID:   userID,
		Products: in.Products,
		Status:   in.Status,
		Shipping: in.Shipping,
	}

	created, err := srv.orders.Create(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("order created", "id", created.ID, "user", userID, "lines", len(created.Products))

	return created, nil
}

// Update validates the partial payload, checks ownership and merges the
// supplied fields. Only status and shipping are mutable.
func (srv *orderService) Update(ctx context.Context, id, callerID string, payload map[string]any) (*entity.Order, error) {
	patch, err := validation.OrderUpdate(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := srv.findOwned(ctx, id, callerID); err != nil {
		return nil, err
	}

	if err := srv.orders.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	updated, err := srv.orders.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back updated order")
	}

	return updated, nil
}

// Delete checks ownership and removes the order permanently.
func (srv *orderService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := srv.findOwned(ctx, id, callerID); err != nil {
		return err
	}

	if err := srv.orders.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.logger.Info("order deleted", "id", id, "user", callerID)

	return nil
}

// resolveProductNames fills each line's display name from the catalog on a
// best-effort basis. A failed lookup (deleted product, store error) leaves
// the name empty and never blocks order creation.
func (srv *orderService) resolveProductNames(ctx context.Context, lines []entity.OrderLine) {
	for i := range lines {
		product, err := srv.products.FindByID(ctx, lines[i].ProductID)
		if err != nil {
			srv.logger.Warn("product name lookup failed",
				"productId", lines[i].ProductID, "error", err)

			continue
		}
		lines[i].ProductName = product.Name
	}
}

func (srv *orderService) findOwned(ctx context.Context, id, callerID string) (*entity.Order, error) {
	order, err := srv.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != callerID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return order, nil
}
