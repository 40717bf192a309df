package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/pong/game/config"
)

func (a *App) listConfigs(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Fprintf(a.out(), "No valid rule sets in %s\n", manager.Dir())
		return nil
	}

	def := manager.GetDefault()
	for _, info := range configs {
		marker := " "
		if def != nil && def.Name == info.Name {
			marker = "*"
		}
		fmt.Fprintf(a.out(), "%s %-12s ball %4.0f  paddle %4.0f  %s\n",
			marker, info.ConfigID, info.BallSpeed, info.PlayerSpeed, info.Description)
	}
	return nil
}
