package middleware

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bearerPattern matches the Authorization header scheme case-insensitively,
// so "bearer", "Bearer" and "BEARER" all pass.
var bearerPattern = regexp.MustCompile(`(?i)^bearer\s+(\S+)$`)

// AuthMiddleware validates bearer tokens and attaches the verified identity
// to the request context.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, profiles usecase.ProfileUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		profiles: profiles,
		logger:   logger,
	}
}

// Authenticate verifies the bearer token and stores the identity for the
// handlers downstream. Every failure mode (missing header, malformed scheme,
// rejected token) collapses into the same unauthenticated error so callers
// learn nothing about which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")

		match := bearerPattern.FindStringSubmatch(authHeader)
		if match == nil {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		identity, err := m.verifier.Verify(c.Request().Context(), match[1])
		if err != nil {
			m.logger.Debug("token verification failed", "error", err)

			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		deliverycontext.SetIdentity(c, identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		m.ensureProfileAsync(ctx, identity)

		return next(c)
	}
}

// ensureProfileAsync upserts the user profile without blocking the request.
// The upsert outlives request cancellation and its failure is only logged;
// profile bookkeeping must never fail an otherwise valid request.
func (m *AuthMiddleware) ensureProfileAsync(ctx context.Context, identity *entity.Identity) {
	detached := context.WithoutCancel(ctx)

	go func() {
		if err := m.profiles.EnsureProfile(detached, identity); err != nil {
			m.logger.Warn("profile upsert failed", "uid", identity.UID, "error", err)
		}
	}()
}
