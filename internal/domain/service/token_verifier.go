// Package service defines interfaces for external capabilities consumed by
// the application layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// TokenVerifier verifies a bearer credential against the identity provider
// and derives the stable caller identity. Verification failures (bad
// signature, expiry, unknown issuer) are returned as errors; the middleware
// maps them all to an unauthenticated response.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
