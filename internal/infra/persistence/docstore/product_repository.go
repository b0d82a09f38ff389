package docstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/errors"
)

const productsCollection = "products"

// productRepository implements repository.ProductRepository over the
// injected DocumentStore.
type productRepository struct {
	store store.DocumentStore
	col   store.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(docStore store.DocumentStore) repository.ProductRepository {
	return &productRepository{
		store: docStore,
		col:   docStore.Collection(productsCollection),
	}
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := repo.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return productFromDoc(doc), nil
}

func (repo *productRepository) List(ctx context.Context, ownerID string, opts repository.ListOptions) ([]*entity.Product, string, error) {
	docs, err := repo.col.Query(ctx, store.Query{
		Filters:    []store.Filter{{Field: "ownerId", Op: "==", Value: ownerID}},
		OrderBy:    opts.SortBy,
		Desc:       opts.Desc,
		Limit:      opts.Limit,
		StartAfter: resolveCursor(ctx, repo.col, opts.PageToken),
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, productFromDoc(doc))
	}

	return products, nextPageToken(docs, opts.Limit), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	id, err := repo.col.Add(ctx, productToDoc(product, repo.store.Now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	// Read back so server-resolved timestamps appear in the response.
	doc, err := repo.col.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back created product")
	}

	return productFromDoc(doc), nil
}

func (repo *productRepository) Update(ctx context.Context, id string, patch *repository.ProductPatch) error {
	fields := map[string]any{}

	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Slug != nil {
		fields["slug"] = *patch.Slug
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	// Nested objects merge field by field through dotted paths; sub-fields
	// that were not supplied keep their stored values.
	if patch.CategoryName != nil {
		fields["category.name"] = *patch.CategoryName
	}
	if patch.CategoryFeatures != nil {
		fields["category.features"] = *patch.CategoryFeatures
	}
	if patch.InventoryTotal != nil {
		fields["inventory.total"] = *patch.InventoryTotal
	}
	if patch.InventoryLocations != nil {
		fields["inventory.locations"] = locationsToDoc(*patch.InventoryLocations)
	}

	now := repo.store.Now()
	fields["updatedAt"] = now
	fields["metadata.updatedAt"] = now

	if err := repo.col.Update(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := repo.col.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func productToDoc(p *entity.Product, now any) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"slug":        p.Slug,
		"price":       p.Price,
		"description": p.Description,
		"ownerId":     p.OwnerID,
		"category": map[string]any{
			"id":       p.Category.ID,
			"name":     p.Category.Name,
			"features": p.Category.Features,
		},
		"inventory": map[string]any{
			"total":     p.Inventory.Total,
			"locations": locationsToDoc(p.Inventory.Locations),
		},
		"metadata": map[string]any{
			"createdBy": p.Metadata.CreatedBy,
			"createdAt": now,
			"updatedAt": now,
		},
		"createdAt": now,
		"updatedAt": now,
	}
}

func locationsToDoc(locations []entity.StockLocation) []any {
	out := make([]any, 0, len(locations))
	for _, loc := range locations {
		out = append(out, map[string]any{
			"warehouse": loc.Warehouse,
			"quantity":  loc.Quantity,
		})
	}

	return out
}

func productFromDoc(doc *store.Document) *entity.Product {
	data := doc.Data
	category := asObject(data["category"])
	inventory := asObject(data["inventory"])
	metadata := asObject(data["metadata"])

	locations := make([]entity.StockLocation, 0)
	for _, loc := range asObjectSlice(inventory["locations"]) {
		locations = append(locations, entity.StockLocation{
			Warehouse: asString(loc["warehouse"]),
			Quantity:  asInt(loc["quantity"]),
		})
	}

	return &entity.Product{
		ID:          doc.ID,
		Name:        asString(data["name"]),
		Slug:        asString(data["slug"]),
		Price:       asFloat(data["price"]),
		Description: asString(data["description"]),
		OwnerID:     asString(data["ownerId"]),
		Category: entity.Category{
			ID:       asString(category["id"]),
			Name:     asString(category["name"]),
			Features: asStringSlice(category["features"]),
		},
		Inventory: entity.Inventory{
			Total:     asInt(inventory["total"]),
			Locations: locations,
		},
		Metadata: entity.RecordMetadata{
			CreatedBy: asString(metadata["createdBy"]),
			CreatedAt: asTime(metadata["createdAt"]),
			UpdatedAt: asTime(metadata["updatedAt"]),
		},
		CreatedAt: asTime(data["createdAt"]),
		UpdatedAt: asTime(data["updatedAt"]),
	}
}
