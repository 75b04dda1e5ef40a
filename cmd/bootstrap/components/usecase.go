package components

import (
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewTablesUseCase,
		NewReservationsUseCase,
		NewAuthUseCase,
	),
)

func NewTablesUseCase(tableRepo usecase.TableRepository, cfg config.Config) usecase.TablesUseCase {
	return usecase.NewTablesUseCase(tableRepo, cfg.Store.Timeout)
}

func NewReservationsUseCase(
	reservationRepo usecase.ReservationRepository,
	tableRepo usecase.TableRepository,
	publisher usecase.EventPublisher,
	cfg config.Config,
) usecase.ReservationsUseCase {
	return usecase.NewReservationsUseCase(reservationRepo, tableRepo, publisher, cfg.Store.Timeout)
}

func NewAuthUseCase(userRepo usecase.UserRepository, issuer usecase.TokenIssuer, cfg config.Config) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(userRepo, issuer, cfg.Store.Timeout)
}
