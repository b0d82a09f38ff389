// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productSortFields are the sort keys the list operation accepts; anything
// else falls back to createdAt.
var productSortFields = []string{"createdAt", "updatedAt"}

// productService implements the ProductUsecase interface.
type productService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(products repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		products: products,
		logger:   logger,
	}
}

// List returns one page of the owner's products.
func (srv *productService) List(ctx context.Context, ownerID string, query *usecase.ListQuery) (*usecase.ProductPage, error) {
	opts := validation.NormalizeListOptions(query.SortBy, query.Order, query.Limit, query.PageToken, productSortFields)

	items, next, err := srv.products.List(ctx, ownerID, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{Items: items, NextPageToken: next}, nil
}

// Get returns a single product after checking the caller owns it.
func (srv *productService) Get(ctx context.Context, id, callerID string) (*entity.Product, error) {
	return srv.findOwned(ctx, id, callerID)
}

// Create validates the payload, stamps ownership and persists the product.
func (srv *productService) Create(ctx context.Context, ownerID string, payload map[string]any) (*entity.Product, error) {
	in, err := validation.ProductCreate(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	product := &entity.Product{
		Name:        in.Name,
		Slug:        in.Slug,
		Price:       in.Price,
		Description: in.Description,
		OwnerID:     ownerID,
		Category: entity.Category{
			ID:       uuid.NewString(),
			Name:     in.CategoryName,
			Features: in.CategoryFeatures,
		},
		Inventory: entity.Inventory{
			Total:     in.InventoryTotal,
			Locations: in.InventoryLocations,
		},
		Metadata: entity.RecordMetadata{CreatedBy: ownerID},
	}

	created, err := srv.products.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", "id", created.ID, "owner", ownerID)

	return created, nil
}

// Update validates the partial payload, checks ownership and merges the
// supplied fields onto the stored document. Only supplied top-level keys are
// touched; category and inventory merge sub-field by sub-field.
func (srv *productService) Update(ctx context.Context, id, callerID string, payload map[string]any) (*entity.Product, error) {
	patch, err := validation.ProductUpdate(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := srv.findOwned(ctx, id, callerID); err != nil {
		return nil, err
	}

	if err := srv.products.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	updated, err := srv.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back updated product")
	}

	return updated, nil
}

// Delete checks ownership and removes the product permanently.
func (srv *productService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := srv.findOwned(ctx, id, callerID); err != nil {
		return err
	}

	if err := srv.products.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("product deleted", "id", id, "owner", callerID)

	return nil
}

// findOwned fetches a product and enforces ownership. A missing document
// yields NotFound; an existing document with another owner yields Forbidden
// before any field is exposed to the caller.
func (srv *productService) findOwned(ctx context.Context, id, callerID string) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.OwnerID != callerID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return product, nil
}
