package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	firebaseauth "storefront/internal/infra/auth/firebase"
	localauth "storefront/internal/infra/auth/local"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/docstore"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newDocumentStore,
		newTokenVerifier,
	)
}

// newDocumentStore selects the persistence backend from config. The
// in-memory store suits local development and tests; Firestore is the
// production backend.
func newDocumentStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (store.DocumentStore, error) {
	if cfg.Store.Provider == "memory" {
		return memory.New(), nil
	}

	client, err := firestore.New(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore store")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// newTokenVerifier selects the credential verifier from config. The local
// HMAC verifier accepts tokens signed with the configured development
// secret; the firebase verifier checks real Firebase ID tokens.
func newTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Auth.Provider == "local" {
		return localauth.NewVerifier(cfg.Auth.LocalSecret), nil
	}

	verifier, err := firebaseauth.NewVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase verifier")
	}

	return verifier, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			docstore.NewProductRepository,
			docstore.NewOrderRepository,
			docstore.NewUserProfileRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
