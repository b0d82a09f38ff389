package validation

import (
	"regexp"
	"strings"

	"storefront/internal/domain/entity"
)

const (
	maxFeatures     = 10
	maxFeatureLen   = 30
	maxLocations    = 20
	maxLocationQty  = 1_000_000
	maxWarehouseLen = 60
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL slug from a product name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphens. The slug is recomputed whenever the name changes and is
// never settable by the client.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(slug, "-")
}

// normalizeFeatures bridges the two legitimate feature-list encodings into
// one canonical shape: an ordered sequence of trimmed, non-empty strings
// with at most maxFeatures entries. Order and duplicates are preserved.
//
// An explicit array is validated strictly (element type, length bounds); the
// legacy comma-string form is split leniently and truncated.
func normalizeFeatures(v any, errs *violations) ([]string, bool) {
	switch raw := v.(type) {
	case []any:
		if len(raw) > maxFeatures {
			errs.addf("category.features must have at most %d entries", maxFeatures)

			return nil, false
		}

		features := make([]string, 0, len(raw))
		for i, item := range raw {
			s, ok := stringValue(item)
			if !ok {
				errs.addf("category.features[%d] must be a string", i)

				return nil, false
			}
			if len([]rune(s)) > maxFeatureLen {
				errs.addf("category.features[%d] must be at most %d characters", i, maxFeatureLen)

				return nil, false
			}
			if s == "" {
				continue
			}
			features = append(features, s)
		}

		return features, true
	case string:
		features := make([]string, 0, maxFeatures)
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			features = append(features, part)
			if len(features) == maxFeatures {
				break
			}
		}

		return features, true
	default:
		errs.addf("category.features must be an array of strings or a comma-separated string")

		return nil, false
	}
}

// normalizeLocations validates the inventory location list. The list itself
// must be an array within bounds (strict), but individual entries with an
// empty warehouse name or a negative/non-numeric quantity are silently
// dropped rather than failing the whole request.
func normalizeLocations(v any, errs *violations) ([]entity.StockLocation, bool) {
	raw, ok := arrayValue(v)
	if !ok {
		errs.addf("inventory.locations must be an array")

		return nil, false
	}
	if len(raw) > maxLocations {
		errs.addf("inventory.locations must have at most %d entries", maxLocations)

		return nil, false
	}

	locations := make([]entity.StockLocation, 0, len(raw))
	for _, item := range raw {
		obj, ok := objectValue(item)
		if !ok {
			continue
		}

		warehouse, ok := stringValue(obj["warehouse"])
		if !ok || warehouse == "" || len([]rune(warehouse)) > maxWarehouseLen {
			continue
		}

		quantity, ok := intValue(obj["quantity"])
		if !ok || quantity < 0 || quantity > maxLocationQty {
			continue
		}

		locations = append(locations, entity.StockLocation{
			Warehouse: warehouse,
			Quantity:  quantity,
		})
	}

	return locations, true
}
