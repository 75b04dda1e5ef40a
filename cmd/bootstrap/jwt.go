package bootstrap

import (
	"time"

	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/jwt"
	"tablebook/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(usecase.TokenIssuer)),
			fx.As(new(usecase.TokenVerifier)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}
