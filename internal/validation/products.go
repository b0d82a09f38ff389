package validation

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const (
	minNameLen         = 2
	maxNameLen         = 80
	maxPrice           = 1_000_000_000
	maxDescriptionLen  = 500
	maxCategoryNameLen = 60
	maxInventoryTotal  = 1_000_000

	defaultCategoryName = "General"
)

// ProductInput is the canonical create record for a product: fully typed,
// trimmed, with defaults applied and the slug already derived.
type ProductInput struct {
	Name               string
	Slug               string
	Price              float64
	Description        string
	CategoryName       string
	CategoryFeatures   []string
	InventoryTotal     int64
	InventoryLocations []entity.StockLocation
}

// categoryPayload resolves the two accepted category encodings: a nested
// {name, features} object or the legacy flat categoryName/categoryFeatures
// keys. When both are supplied, the nested object wins.
func categoryPayload(payload map[string]any) (name any, features any) {
	name, features = payload["categoryName"], payload["categoryFeatures"]
	if obj, ok := objectValue(payload["category"]); ok {
		if v, ok := obj["name"]; ok {
			name = v
		}
		if v, ok := obj["features"]; ok {
			features = v
		}
	}

	return name, features
}

// inventoryPayload resolves the nested {total, locations} object or the
// legacy flat inventoryTotal/inventoryLocations keys, nested winning.
func inventoryPayload(payload map[string]any) (total any, locations any) {
	total, locations = payload["inventoryTotal"], payload["inventoryLocations"]
	if obj, ok := objectValue(payload["inventory"]); ok {
		if v, ok := obj["total"]; ok {
			total = v
		}
		if v, ok := obj["locations"]; ok {
			locations = v
		}
	}

	return total, locations
}

func productName(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		errs.addf("name must be a string")

		return "", false
	}
	if n := len([]rune(s)); n < minNameLen || n > maxNameLen {
		errs.addf("name must be %d-%d characters", minNameLen, maxNameLen)

		return "", false
	}

	return s, true
}

func productPrice(v any, errs *violations) (float64, bool) {
	p, ok := numberValue(v)
	if !ok {
		errs.addf("price must be a number")

		return 0, false
	}
	if p < 0 || p > maxPrice {
		errs.addf("price must be between 0 and %d", maxPrice)

		return 0, false
	}

	return p, true
}

func productDescription(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		errs.addf("description must be a string")

		return "", false
	}
	if len([]rune(s)) > maxDescriptionLen {
		errs.addf("description must be at most %d characters", maxDescriptionLen)

		return "", false
	}

	return s, true
}

// productCategoryName validates the category name. An empty string falls
// back to the default category rather than failing.
func productCategoryName(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		errs.addf("category.name must be a string")

		return "", false
	}
	if s == "" {
		return defaultCategoryName, true
	}
	if n := len([]rune(s)); n < 2 || n > maxCategoryNameLen {
		errs.addf("category.name must be 2-%d characters", maxCategoryNameLen)

		return "", false
	}

	return s, true
}

func productInventoryTotal(v any, errs *violations) (int64, bool) {
	n, ok := intValue(v)
	if !ok {
		errs.addf("inventory.total must be an integer")

		return 0, false
	}
	if n < 0 || n > maxInventoryTotal {
		errs.addf("inventory.total must be between 0 and %d", maxInventoryTotal)

		return 0, false
	}

	return n, true
}

// ProductCreate validates a raw create payload and returns the canonical
// record. All violations are collected before failing; unknown fields are
// dropped silently.
func ProductCreate(payload map[string]any) (*ProductInput, error) {
	var errs violations

	in := &ProductInput{
		CategoryName:       defaultCategoryName,
		CategoryFeatures:   []string{},
		InventoryLocations: []entity.StockLocation{},
	}

	if v, ok := payload["name"]; ok {
		if name, ok := productName(v, &errs); ok {
			in.Name = name
			in.Slug = Slugify(name)
		}
	} else {
		errs.addf("name is required")
	}

	if v, ok := payload["price"]; ok {
		if price, ok := productPrice(v, &errs); ok {
			in.Price = price
		}
	} else {
		errs.addf("price is required")
	}

	if v, ok := payload["description"]; ok {
		if desc, ok := productDescription(v, &errs); ok {
			in.Description = desc
		}
	}

	catName, catFeatures := categoryPayload(payload)
	if catName != nil {
		if name, ok := productCategoryName(catName, &errs); ok {
			in.CategoryName = name
		}
	}
	if catFeatures != nil {
		if features, ok := normalizeFeatures(catFeatures, &errs); ok {
			in.CategoryFeatures = features
		}
	}

	invTotal, invLocations := inventoryPayload(payload)
	if invTotal != nil {
		if total, ok := productInventoryTotal(invTotal, &errs); ok {
			in.InventoryTotal = total
		}
	}
	if invLocations != nil {
		if locations, ok := normalizeLocations(invLocations, &errs); ok {
			in.InventoryLocations = locations
		}
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return in, nil
}

// ProductUpdate validates a raw partial-update payload. Only supplied
// recognized fields end up in the patch; at least one must be present.
func ProductUpdate(payload map[string]any) (*repository.ProductPatch, error) {
	var errs violations

	patch := &repository.ProductPatch{}

	if v, ok := payload["name"]; ok {
		if name, ok := productName(v, &errs); ok {
			slug := Slugify(name)
			patch.Name = &name
			patch.Slug = &slug
		}
	}

	if v, ok := payload["price"]; ok {
		if price, ok := productPrice(v, &errs); ok {
			patch.Price = &price
		}
	}

	if v, ok := payload["description"]; ok {
		if desc, ok := productDescription(v, &errs); ok {
			patch.Description = &desc
		}
	}

	catName, catFeatures := categoryPayload(payload)
	if catName != nil {
		if name, ok := productCategoryName(catName, &errs); ok {
			patch.CategoryName = &name
		}
	}
	if catFeatures != nil {
		if features, ok := normalizeFeatures(catFeatures, &errs); ok {
			patch.CategoryFeatures = &features
		}
	}

	invTotal, invLocations := inventoryPayload(payload)
	if invTotal != nil {
		if total, ok := productInventoryTotal(invTotal, &errs); ok {
			patch.InventoryTotal = &total
		}
	}
	if invLocations != nil {
		if locations, ok := normalizeLocations(invLocations, &errs); ok {
			patch.InventoryLocations = &locations
		}
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return nil, errAtLeastOneField()
	}

	return patch, nil
}
