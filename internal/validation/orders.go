package validation

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const (
	minProductIDLen = 3
	maxProductIDLen = 200
	maxQuantity     = 10_000
	minStatusLen    = 2
	maxStatusLen    = 30
	minAddressLen   = 3
	maxAddressLen   = 120
	minCityLen      = 2
	maxCityLen      = 60
	maxTrackingLen  = 80

	defaultStatus = "processing"
)

// OrderInput is the canonical create record for an order. Line items carry
// an empty ProductName; resolution against the catalog happens later in the
// usecase.
type OrderInput struct {
	Products []entity.OrderLine
	Status   string
	Shipping entity.ShippingInfo
}

func orderStatus(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		errs.addf("status must be a string")

		return "", false
	}
	if n := len([]rune(s)); n < minStatusLen || n > maxStatusLen {
		errs.addf("status must be %d-%d characters", minStatusLen, maxStatusLen)

		return "", false
	}

	return s, true
}

func orderLine(i int, v any, errs *violations) (entity.OrderLine, bool) {
	line := entity.OrderLine{ProductSnapshot: map[string]any{}}

	obj, ok := objectValue(v)
	if !ok {
		errs.addf("products[%d] must be an object", i)

		return line, false
	}

	valid := true

	if id, ok := stringValue(obj["productId"]); ok && len(id) >= minProductIDLen && len(id) <= maxProductIDLen {
		line.ProductID = id
	} else {
		errs.addf("products[%d].productId must be a string of %d-%d characters", i, minProductIDLen, maxProductIDLen)
		valid = false
	}

	if qty, ok := intValue(obj["quantity"]); ok && qty >= 1 && qty <= maxQuantity {
		line.Quantity = qty
	} else {
		errs.addf("products[%d].quantity must be an integer between 1 and %d", i, maxQuantity)
		valid = false
	}

	if price, ok := numberValue(obj["priceAtPurchase"]); ok && price >= 0 && price <= maxPrice {
		line.PriceAtPurchase = price
	} else {
		errs.addf("products[%d].priceAtPurchase must be a number between 0 and %d", i, maxPrice)
		valid = false
	}

	if raw, ok := obj["productSnapshot"]; ok {
		if snapshot, ok := objectValue(raw); ok {
			line.ProductSnapshot = snapshot
		} else {
			errs.addf("products[%d].productSnapshot must be an object", i)
			valid = false
		}
	}

	return line, valid
}

func shippingAddress(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok || len([]rune(s)) < minAddressLen || len([]rune(s)) > maxAddressLen {
		errs.addf("shipping.address must be a string of %d-%d characters", minAddressLen, maxAddressLen)

		return "", false
	}

	return s, true
}

func shippingCity(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok || len([]rune(s)) < minCityLen || len([]rune(s)) > maxCityLen {
		errs.addf("shipping.city must be a string of %d-%d characters", minCityLen, maxCityLen)

		return "", false
	}

	return s, true
}

func shippingTracking(v any, errs *violations) (string, bool) {
	s, ok := stringValue(v)
	if !ok || len([]rune(s)) > maxTrackingLen {
		errs.addf("shipping.tracking must be a string of at most %d characters", maxTrackingLen)

		return "", false
	}

	return s, true
}

// OrderCreate validates a raw create payload and returns the canonical
// record. All violations are collected before failing.
func OrderCreate(payload map[string]any) (*OrderInput, error) {
	var errs violations

	in := &OrderInput{Status: defaultStatus}

	if raw, ok := arrayValue(payload["products"]); ok && len(raw) > 0 {
		in.Products = make([]entity.OrderLine, 0, len(raw))
		for i, item := range raw {
			line, ok := orderLine(i, item, &errs)
			if ok {
				in.Products = append(in.Products, line)
			}
		}
	} else {
		errs.addf("products must be a non-empty array")
	}

	if v, ok := payload["status"]; ok {
		if status, ok := orderStatus(v, &errs); ok {
			in.Status = status
		}
	}

	if obj, ok := objectValue(payload["shipping"]); ok {
		if address, ok := shippingAddress(obj["address"], &errs); ok {
			in.Shipping.Address = address
		}
		if city, ok := shippingCity(obj["city"], &errs); ok {
			in.Shipping.City = city
		}
		if raw, ok := obj["tracking"]; ok {
			if tracking, ok := shippingTracking(raw, &errs); ok {
				in.Shipping.Tracking = tracking
			}
		}
	} else {
		errs.addf("shipping must be an object")
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return in, nil
}

// OrderUpdate validates a raw partial-update payload. Only status and
// shipping are mutable after creation; line items are frozen at purchase
// time.
func OrderUpdate(payload map[string]any) (*repository.OrderPatch, error) {
	var errs violations

	patch := &repository.OrderPatch{}

	if v, ok := payload["status"]; ok {
		if status, ok := orderStatus(v, &errs); ok {
			patch.Status = &status
		}
	}

	if raw, ok := payload["shipping"]; ok {
		obj, ok := objectValue(raw)
		if !ok {
			errs.addf("shipping must be an object")
		} else {
			if v, ok := obj["address"]; ok {
				if address, ok := shippingAddress(v, &errs); ok {
					patch.ShippingAddress = &address
				}
			}
			if v, ok := obj["city"]; ok {
				if city, ok := shippingCity(v, &errs); ok {
					patch.ShippingCity = &city
				}
			}
			if v, ok := obj["tracking"]; ok {
				if tracking, ok := shippingTracking(v, &errs); ok {
					patch.ShippingTracking = &tracking
				}
			}
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
