package entity

import "time"

// Order is a purchase record owned by the user that placed it. Line items
// capture quantity and price at creation time and are never recomputed from
// the current product state.
type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Products  []OrderLine  `json:"products"` // always at least one entry
	Status    string       `json:"status"`   // free text, defaults to "processing"
	Shipping  ShippingInfo `json:"shipping"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// OrderLine is a single purchased product within an order.
type OrderLine struct {
	ProductID string `json:"productId"`
	// ProductName is resolved from the product catalog at creation time on a
	// best-effort basis. A failed lookup leaves it empty.
	ProductName     string         `json:"productName"`
	Quantity        int64          `json:"quantity"`
	PriceAtPurchase float64        `json:"priceAtPurchase"`
	ProductSnapshot map[string]any `json:"productSnapshot"`
}

// ShippingInfo holds the delivery destination and optional tracking reference.
type ShippingInfo struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	Tracking string `json:"tracking"`
}
