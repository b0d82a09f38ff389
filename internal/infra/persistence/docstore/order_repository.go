package docstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/errors"
)

const ordersCollection = "orders"

// orderRepository implements repository.OrderRepository over the injected
// DocumentStore.
type orderRepository struct {
	store store.DocumentStore
	col   store.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(docStore store.DocumentStore) repository.OrderRepository {
	return &orderRepository{
		store: docStore,
		col:   docStore.Collection(ordersCollection),
	}
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := repo.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return orderFromDoc(doc), nil
}

func (repo *orderRepository) List(ctx context.Context, userID string, opts repository.ListOptions) ([]*entity.Order, string, error) {
	docs, err := repo.col.Query(ctx, store.Query{
		Filters:    []store.Filter{{Field: "userId", Op: "==", Value: userID}},
		OrderBy:    opts.SortBy,
		Desc:       opts.Desc,
		Limit:      opts.Limit,
		StartAfter: resolveCursor(ctx, repo.col, opts.PageToken),
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, orderFromDoc(doc))
	}

	return orders, nextPageToken(docs, opts.Limit), nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	id, err := repo.col.Add(ctx, orderToDoc(order, repo.store.Now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	doc, err := repo.col.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back created order")
	}

	return orderFromDoc(doc), nil
}

func (repo *orderRepository) Update(ctx context.Context, id string, patch *repository.OrderPatch) error {
	fields := map[string]any{}

	if patch.Status != nil {
		fields["status"] = *patch.Status
	}

	// Shipping sub-fields merge onto the stored object one by one.
	if patch.ShippingAddress != nil {
		fields["shipping.address"] = *patch.ShippingAddress
	}
	if patch.ShippingCity != nil {
		fields["shipping.city"] = *patch.ShippingCity
	}
	if patch.ShippingTracking != nil {
		fields["shipping.tracking"] = *patch.ShippingTracking
	}

	fields["updatedAt"] = repo.store.Now()

	if err := repo.col.Update(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	if err := repo.col.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func orderToDoc(o *entity.Order, now any) map[string]any {
	lines := make([]any, 0, len(o.Products))
	for _, line := range o.Products {
		snapshot := line.ProductSnapshot
		if snapshot == nil {
			snapshot = map[string]any{}
		}
		lines = append(lines, map[string]any{
			"productId":       line.ProductID,
			"productName":     line.ProductName,
			"quantity":        line.Quantity,
			"priceAtPurchase": line.PriceAtPurchase,
			"productSnapshot": snapshot,
		})
	}

	return map[string]any{
		"userId":   o.UserID,
		"products": lines,
		"status":   o.Status,
		"shipping": map[string]any{
			"address":  o.Shipping.Address,
			"city":     o.Shipping.City,
			"tracking": o.Shipping.Tracking,
		},
		"createdAt": now,
		"updatedAt": now,
	}
}

func orderFromDoc(doc *store.Document) *entity.Order {
	data := doc.Data
	shipping := asObject(data["shipping"])

	lines := make([]entity.OrderLine, 0)
	for _, raw := range asObjectSlice(data["products"]) {
		snapshot := asObject(raw["productSnapshot"])
		if snapshot == nil {
			snapshot = map[string]any{}
		}
		lines = append(lines, entity.OrderLine{
			ProductID:       asString(raw["productId"]),
			ProductName:     asString(raw["productName"]),
			Quantity:        asInt(raw["quantity"]),
			PriceAtPurchase: asFloat(raw["priceAtPurchase"]),
			ProductSnapshot: snapshot,
		})
	}

	return &entity.Order{
		ID:       doc.ID,
		UserID:   asString(data["userId"]),
		Products: lines,
		Status:   asString(data["status"]),
		Shipping: entity.ShippingInfo{
			Address:  asString(shipping["address"]),
			City:     asString(shipping["city"]),
			Tracking: asString(shipping["tracking"]),
		},
		CreatedAt: asTime(data["createdAt"]),
		UpdatedAt: asTime(data["updatedAt"]),
	}
}
