// Package local implements the TokenVerifier capability with HMAC-signed
// JWTs. It exists for local development and testing, where no Firebase
// project is available; tokens are minted by hand with the shared secret.
package local

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type verifier struct {
	secret []byte
}

// NewVerifier creates a TokenVerifier that accepts HS256 tokens signed with
// the given secret.
func NewVerifier(secret string) service.TokenVerifier {
	return &verifier{secret: []byte(secret)}
}

// Verify parses and validates the token and derives the caller identity
// from the sub and email claims.
func (v *verifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return nil, errors.New("subject missing from token")
	}

	email, _ := claims["email"].(string)

	return &entity.Identity{UID: uid, Email: email}, nil
}
