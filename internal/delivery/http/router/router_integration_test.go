package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/middleware"
	localauth "storefront/internal/infra/auth/local"
	"storefront/internal/infra/persistence/docstore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-secret"

// newTestServer wires the full HTTP stack by hand: memory store, local
// verifier, real middleware and handlers.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docStore := memory.New()

	products := docstore.NewProductRepository(docStore)
	orders := docstore.NewOrderRepository(docStore)
	profiles := docstore.NewUserProfileRepository(docStore)

	productSvc := impl.NewProductService(products, logger)
	orderSvc := impl.NewOrderService(orders, products, logger)
	profileSvc := impl.NewProfileService(profiles, logger)

	verifier := localauth.NewVerifier(testSecret)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ProductHandler:      handler.NewProductHandler(productSvc, logger),
		OrderHandler:        handler.NewOrderHandler(orderSvc, logger),
		AuthMiddleware:      httpmiddleware.NewAuthMiddleware(verifier, profileSvc, logger),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
	}).RegisterRoutes(e)

	return e
}

func mintToken(t *testing.T, uid string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uid,
		"email": uid + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestRouter_MissingTokenIsUnauthenticated(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)
}

func TestRouter_BearerSchemeIsCaseInsensitive(t *testing.T) {
	e := newTestServer(t)
	token := mintToken(t, "alice")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProductLifecycle(t *testing.T) {
	e := newTestServer(t)
	alice := mintToken(t, "alice")
	bob := mintToken(t, "bob")

	// Create
	rec := doRequest(e, http.MethodPost, "/api/products", alice,
		`{"name":"Gaming Mouse","price":49.99,"category":{"name":"Electronics"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	envelope := decodeEnvelope(t, rec)
	created := envelope.Data.(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, "gaming-mouse", created["slug"])
	assert.Equal(t, "alice", created["ownerId"])

	// Owner can read it back
	rec = doRequest(e, http.MethodGet, "/api/products/"+id, alice, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Another user gets forbidden, not a silent not-found
	rec = doRequest(e, http.MethodGet, "/api/products/"+id, bob, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// A missing id is not found
	rec = doRequest(e, http.MethodGet, "/api/products/no-such-id", alice, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Partial update keeps unpatched fields
	rec = doRequest(e, http.MethodPut, "/api/products/"+id, alice, `{"price":59.99}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeEnvelope(t, rec).Data.(map[string]any)
	assert.Equal(t, "Gaming Mouse", updated["name"])
	assert.InDelta(t, 59.99, updated["price"].(float64), 1e-9)

	// Delete
	rec = doRequest(e, http.MethodDelete, "/api/products/"+id, alice, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/products/"+id, alice, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ValidationErrorListsAllViolations(t *testing.T) {
	e := newTestServer(t)
	alice := mintToken(t, "alice")

	rec := doRequest(e, http.MethodPost, "/api/products", alice, `{"name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)

	details, ok := envelope.Error.Details.([]any)
	require.True(t, ok, "details must carry the violation list")
	assert.Len(t, details, 2)
}

func TestRouter_ListReturnsEnvelopeWithItems(t *testing.T) {
	e := newTestServer(t)
	alice := mintToken(t, "alice")

	for _, name := range []string{"Mouse", "Keyboard", "Monitor"} {
		rec := doRequest(e, http.MethodPost, "/api/products", alice,
			`{"name":"`+name+`","price":10}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/api/products?limit=2&order=asc", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decodeEnvelope(t, rec).Data.(map[string]any)
	items := page["items"].([]any)
	assert.Len(t, items, 2)
	assert.NotEmpty(t, page["nextPageToken"])
}

func TestRouter_OrderLifecycle(t *testing.T) {
	e := newTestServer(t)
	alice := mintToken(t, "alice")

	rec := doRequest(e, http.MethodPost, "/api/orders", alice,
		`{"products":[{"productId":"prod-1","quantity":2,"priceAtPurchase":10}],"shipping":{"address":"Unirii 10","city":"Bucharest"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeEnvelope(t, rec).Data.(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, "processing", created["status"])

	rec = doRequest(e, http.MethodPut, "/api/orders/"+id, alice, `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shipped", decodeEnvelope(t, rec).Data.(map[string]any)["status"])

	rec = doRequest(e, http.MethodPut, "/api/orders/"+id, alice, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MeEchoesIdentity(t *testing.T) {
	e := newTestServer(t)
	token := mintToken(t, "alice")

	rec := doRequest(e, http.MethodGet, "/api/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec).Data.(map[string]any)
	assert.Equal(t, "alice", data["uid"])
	assert.Equal(t, "alice@example.com", data["email"])
}
