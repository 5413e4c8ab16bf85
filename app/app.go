package app

import (
	"github.com/relaykit/relay/config"
	"github.com/relaykit/relay/internal/shell"
	"github.com/relaykit/relay/relay"
	"github.com/relaykit/relay/util/conf"
	"github.com/relaykit/relay/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide relay core
		relay.Module(),
	)

	return shell.New(log, sharedModule), nil
}
