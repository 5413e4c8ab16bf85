package lambda

import (
	"go.uber.org/fx"

	"github.com/relaykit/relay/handler"
	"github.com/relaykit/relay/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide handlers
		handler.Module(),
		// provide lambda entry
		fx.Provide(NewLifecycleHandler),
		// invoke lambda entry
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
