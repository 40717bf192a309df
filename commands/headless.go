package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/game/loop"
)

// HeadlessResult is printed when a headless run ends.
type HeadlessResult struct {
	Rules   string           `json:"rules"`
	Frames  int              `json:"frames"`
	Elapsed float64          `json:"elapsed"`
	State   engine.GameState `json:"state"`
}

func (a *App) headlessCommand() *cli.Command {
	return &cli.Command{
		Name:  "headless",
		Usage: "run the simulation without a window and print the final state",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "frames",
				Value: 600,
				Usage: "frames to simulate; 0 runs until interrupted",
			},
			&cli.FloatFlag{
				Name:  "dt",
				Value: 1.0 / 60.0,
				Usage: "seconds per frame",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: `held inputs, e.g. "p1-up@0-60,p2-down@30-90"`,
			},
			&cli.IntFlag{
				Name:  "width",
				Value: engine.DefaultScreenWidth,
				Usage: "court width",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: engine.DefaultScreenHeight,
				Usage: "court height",
			},
			&cli.BoolFlag{
				Name:  "realtime",
				Usage: "pace frames at dt instead of running them back to back",
			},
		},
		Action: a.headless,
	}
}

func (a *App) headless(ctx context.Context, cmd *cli.Command) error {
	dt := cmd.Float("dt")
	if dt <= 0 || math.IsInf(dt, 0) || math.IsNaN(dt) {
		return fmt.Errorf("dt must be a positive number of seconds, got %v", dt)
	}

	width, height := int(cmd.Int("width")), int(cmd.Int("height"))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("court size must be positive, got %dx%d", width, height)
	}

	input, err := loop.ParseScript(cmd.String("script"))
	if err != nil {
		return err
	}

	rules, manager, err := loadRules(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(rules, float64(width), float64(height))
	if err != nil {
		return err
	}

	runner := &loop.Runner{
		Engine:  eng,
		Clock:   loop.FixedClock{Step: dt},
		Input:   input,
		Surface: loop.NewHeadlessSurface(float64(width), float64(height)),
	}
	if cmd.Bool("realtime") {
		runner.Interval = time.Duration(dt * float64(time.Second))
	}
	if feed := startSpectating(ctx, cmd, rules, manager); feed != nil {
		runner.Observer = feed.Observe
	}

	frames := int(cmd.Int("frames"))
	done, err := runner.Run(ctx, frames)
	if err != nil && !(frames <= 0 && errors.Is(err, context.Canceled)) {
		return err
	}

	result := HeadlessResult{
		Rules:   rules.Name,
		Frames:  done,
		Elapsed: float64(done) * dt,
		State:   eng.GetState(),
	}

	enc := json.NewEncoder(a.out())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
