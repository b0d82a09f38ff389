// Package firebase implements the TokenVerifier capability against Firebase
// Authentication. The single-page client obtains ID tokens from Firebase;
// this verifier checks them server-side and derives the caller identity.
package firebase

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type verifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewVerifier creates a Firebase-backed TokenVerifier. When credentialsPath
// is empty, application-default credentials are used.
func NewVerifier(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &verifier{client: client, logger: logger}, nil
}

// Verify checks the ID token's signature, issuer and expiry and returns the
// caller identity. Any failure is reported as a single verification error;
// the middleware maps it to an unauthenticated response.
func (v *verifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid or expired ID token")
	}

	email, _ := decoded.Claims["email"].(string)

	return &entity.Identity{
		UID:   decoded.UID,
		Email: email,
	}, nil
}
