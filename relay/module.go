package relay

import "go.uber.org/fx"

// Module provides the relay module.
func Module() fx.Option {
	return fx.Module(
		"relay",

		// provide relay
		fx.Provide(NewRelay),

		// provide relay handler
		fx.Provide(NewRelayHandler),
	)
}
