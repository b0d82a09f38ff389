package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderPayload() map[string]any {
	return map[string]any{
		"products": []any{
			map[string]any{
				"productId":       "prod-123",
				"quantity":        float64(2),
				"priceAtPurchase": 49.99,
				"productSnapshot": map[string]any{"name": "Mouse"},
			},
		},
		"status": "shipped",
		"shipping": map[string]any{
			"address":  "Unirii 10",
			"city":     "Bucharest",
			"tracking": "TRK-123456",
		},
	}
}

func TestOrderCreate_Valid(t *testing.T) {
	in, err := OrderCreate(validOrderPayload())
	require.NoError(t, err)

	require.Len(t, in.Products, 1)
	assert.Equal(t, "prod-123", in.Products[0].ProductID)
	assert.Equal(t, int64(2), in.Products[0].Quantity)
	assert.InDelta(t, 49.99, in.Products[0].PriceAtPurchase, 1e-9)
	assert.Equal(t, "shipped", in.Status)
	assert.Equal(t, "Bucharest", in.Shipping.City)
	assert.Equal(t, "TRK-123456", in.Shipping.Tracking)
}

func TestOrderCreate_DefaultStatus(t *testing.T) {
	payload := validOrderPayload()
	delete(payload, "status")

	in, err := OrderCreate(payload)
	require.NoError(t, err)

	assert.Equal(t, "processing", in.Status)
}

func TestOrderCreate_EmptyProductsFails(t *testing.T) {
	payload := validOrderPayload()
	payload["products"] = []any{}

	_, err := OrderCreate(payload)

	got := violationsOf(t, err)
	assert.Contains(t, got[0], "products must be a non-empty array")
}

func TestOrderCreate_LineViolationsAreIndexed(t *testing.T) {
	payload := validOrderPayload()
	payload["products"] = []any{
		map[string]any{
			"productId":       "prod-123",
			"quantity":        float64(1),
			"priceAtPurchase": float64(10),
		},
		map[string]any{
			"productId":       "x",
			"quantity":        float64(0),
			"priceAtPurchase": "free",
		},
	}

	_, err := OrderCreate(payload)

	got := violationsOf(t, err)
	require.Len(t, got, 3)
	for _, v := range got {
		assert.Contains(t, v, "products[1]")
	}
}

func TestOrderCreate_MissingShippingFails(t *testing.T) {
	payload := validOrderPayload()
	delete(payload, "shipping")

	_, err := OrderCreate(payload)

	got := violationsOf(t, err)
	assert.Contains(t, got[0], "shipping must be an object")
}

func TestOrderUpdate_StatusOnly(t *testing.T) {
	patch, err := OrderUpdate(map[string]any{"status": "delivered"})
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, "delivered", *patch.Status)
	assert.Nil(t, patch.ShippingAddress)
}

func TestOrderUpdate_EmptyStatusFails(t *testing.T) {
	// Clearing the status is not a valid transition; the field stays free
	// text but can never be blanked.
	_, err := OrderUpdate(map[string]any{"status": ""})

	got := violationsOf(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "status must be 2-30 characters", got[0])
}

func TestOrderUpdate_EmptyPayloadFails(t *testing.T) {
	_, err := OrderUpdate(map[string]any{})

	got := violationsOf(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "at least one field required", got[0])
}

func TestOrderUpdate_ShippingSubfields(t *testing.T) {
	patch, err := OrderUpdate(map[string]any{
		"shipping": map[string]any{"tracking": "TRK-777"},
	})
	require.NoError(t, err)

	require.NotNil(t, patch.ShippingTracking)
	assert.Equal(t, "TRK-777", *patch.ShippingTracking)
	assert.Nil(t, patch.ShippingAddress)
	assert.Nil(t, patch.ShippingCity)
}

func TestOrderUpdate_ProductsAreImmutable(t *testing.T) {
	_, err := OrderUpdate(map[string]any{
		"products": []any{map[string]any{"productId": "prod-1"}},
	})

	got := violationsOf(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "at least one field required", got[0])
}
