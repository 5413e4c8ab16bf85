package standalone

import (
	"go.uber.org/fx"

	"github.com/relaykit/relay/handler"
	"github.com/relaykit/relay/internal/server"
	"github.com/relaykit/relay/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
