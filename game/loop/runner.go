package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wricardo/pong/game/engine"
)

// Observer is called with a copy of the state after every frame.
type Observer func(state engine.GameState)

// Runner drives an engine frame by frame: Update with the clock, input and
// surface size, then Render.
type Runner struct {
	Engine  engine.Engine
	Clock   Clock
	Input   InputSource
	Surface engine.Surface

	// Interval paces frames in real time. Zero runs frames back to back.
	Interval time.Duration

	Observer Observer
}

// Step runs a single frame.
func (r *Runner) Step() error {
	dt := r.Clock.Delta()
	in := r.Input.Poll()
	width, height := r.Surface.Size()

	r.Engine.Update(dt, in, width, height)

	if err := r.Engine.Render(r.Surface); err != nil {
		return fmt.Errorf("render frame %d: %w", r.Engine.GetState().Frame, err)
	}

	if r.Observer != nil {
		r.Observer(r.Engine.GetState())
	}
	return nil
}

// Run executes frames until the count is reached, a render fails or ctx is
// done. A count of zero or less runs until ctx is done. It returns the number
// of frames completed.
func (r *Runner) Run(ctx context.Context, frames int) (int, error) {
	if r.Engine == nil || r.Clock == nil || r.Input == nil || r.Surface == nil {
		return 0, errors.New("runner: engine, clock, input and surface are required")
	}

	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	done := 0
	for frames <= 0 || done < frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return done, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return done, err
		}

		if err := r.Step(); err != nil {
			return done, err
		}
		done++
	}

	return done, nil
}
