// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Product is a catalog entry owned by the identity that created it.
// OwnerID is assigned once at creation and is never touched by updates.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"` // derived from Name, never client-settable
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	OwnerID     string         `json:"ownerId"`
	Category    Category       `json:"category"`
	Inventory   Inventory      `json:"inventory"`
	Metadata    RecordMetadata `json:"metadata"`

	// CreatedAt/UpdatedAt are duplicated at the top level so list queries can
	// sort without reaching into the metadata object.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category groups a product under a named category with a short feature list.
type Category struct {
	ID       string   `json:"id"` // random token assigned at creation
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

// Inventory tracks the total stock of a product and where it is held.
type Inventory struct {
	Total     int64           `json:"total"`
	Locations []StockLocation `json:"locations"`
}

// StockLocation is a per-warehouse stock count.
type StockLocation struct {
	Warehouse string `json:"warehouse"`
	Quantity  int64  `json:"quantity"`
}

// RecordMetadata carries audit fields nested inside the stored document.
type RecordMetadata struct {
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
