package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/pong/game/config"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/game/loop"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "pong"
)

// PlayFunc opens an interactive match with the given rules. observer may be
// nil.
type PlayFunc func(ctx context.Context, rules *engine.GameConfig, observer loop.Observer) error

// App wires the command tree to its collaborators.
type App struct {
	// Play runs the interactive host. Required for the play command.
	Play PlayFunc

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

// Run parses args (including the program name) and executes the command.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.Command().Run(ctx, args)
}

// Command builds the root command.
func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "two-player Pong",
		Version: Version,
		Writer:  a.out(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing rule sets",
				Sources: cli.EnvVars("PONG_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "rules",
				Usage:   "rule set name in the config directory, or a path to a rules JSON file",
				Sources: cli.EnvVars("PONG_RULES"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "spectate",
				Usage:   "serve a read-only spectator API on this address (e.g. localhost:8080)",
				Sources: cli.EnvVars("PONG_SPECTATE_ADDR"),
			},
			&cli.IntFlag{
				Name:  "spectate-every",
				Value: 6,
				Usage: "frames between spectator state updates",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open a window and play (default)",
				Action: a.play,
			},
			a.headlessCommand(),
			{
				Name:      "validate",
				Usage:     "check rule files",
				ArgsUsage: "[files...]",
				Action:    a.validate,
			},
			{
				Name:   "configs",
				Usage:  "list rule sets in the config directory",
				Action: a.listConfigs,
			},
		},
	}
}

func (a *App) play(ctx context.Context, cmd *cli.Command) error {
	if a.Play == nil {
		return errors.New("play: no interactive host available")
	}

	rules, manager, err := loadRules(cmd)
	if err != nil {
		return err
	}

	feed := startSpectating(ctx, cmd, rules, manager)

	log.Printf("Starting %s with rules %q", AppName, rules.Name)
	if feed != nil {
		return a.Play(ctx, rules, feed.Observe)
	}
	return a.Play(ctx, rules, nil)
}

// loadRules resolves --rules against --config-dir. A value that names an
// existing file is loaded directly. A missing config directory falls back to
// the built-in classic rules unless a rule set was requested by name.
func loadRules(cmd *cli.Command) (*engine.GameConfig, *config.Manager, error) {
	dir := cmd.String("config-dir")
	name := cmd.String("rules")

	if isRulesFile(name) {
		rules, err := engine.LoadGameConfig(name)
		if err != nil {
			return nil, nil, fmt.Errorf("load rules %s: %w", name, err)
		}
		manager, _ := config.NewManager(dir)
		return rules, manager, nil
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		if name != "" {
			return nil, nil, err
		}
		log.Printf("No config directory at %s, using built-in rules", dir)
		return engine.DefaultConfig(), nil, nil
	}

	rules, err := manager.Resolve(name)
	if err != nil {
		return nil, nil, err
	}
	return rules, manager, nil
}

func isRulesFile(name string) bool {
	if name == "" {
		return false
	}
	if !strings.HasSuffix(name, ".json") && !strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
