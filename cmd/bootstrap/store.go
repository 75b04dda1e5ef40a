package bootstrap

import (
	"context"
	"fmt"

	"tablebook/internal/infra/dynamo"
	"tablebook/internal/infra/postgres"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles the repository set for the configured backend. The
// rest of the app depends on the usecase ports only, so swapping
// STORE_BACKEND never touches anything above this provider.
type Stores struct {
	fx.Out

	Tables       usecase.TableRepository
	Reservations usecase.ReservationRepository
	Users        usecase.UserRepository
}

func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	stores, cleanup, err := BuildStores(context.Background(), cfg)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return stores, nil
}

// BuildStores constructs the backend-specific repository set. The
// returned cleanup is a no-op for backends without pooled connections.
func BuildStores(ctx context.Context, cfg config.Config) (Stores, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		pool, cleanup, err := postgres.Connect(ctx, cfg.DB)
		if err != nil {
			return Stores{}, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			cleanup()
			return Stores{}, nil, err
		}
		return Stores{
			Tables:       postgres.NewTableRepository(pool),
			Reservations: postgres.NewReservationRepository(pool),
			Users:        postgres.NewUserRepository(pool),
		}, cleanup, nil

	case "dynamo":
		client, err := dynamo.NewClient(ctx, cfg.Dynamo)
		if err != nil {
			return Stores{}, nil, err
		}
		return Stores{
			Tables:       dynamo.NewTableRepository(client, cfg.Dynamo.TablesTable),
			Reservations: dynamo.NewReservationRepository(client, cfg.Dynamo.ReservationsTable),
			Users:        dynamo.NewUserRepository(client, cfg.Dynamo.UsersTable),
		}, func() {}, nil

	default:
		return Stores{}, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
}
