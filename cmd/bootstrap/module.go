package bootstrap

import (
	"tablebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	EventsModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// CoreModule wires everything below the HTTP surface. The lambda and
// CLI entrypoints use it without the gin handler stack.
var CoreModule = fx.Options(
	ConfigModule,
	StoreModule,
	EventsModule,
	JWTModule,
	components.UseCaseModule,
)
