// Command analyze prints quick, human-readable heuristics about rule files:
// how long the ball takes to cross the court, how long a paddle needs to
// travel its full range, whether a paddle can always get there in time, how
// often the ball hits a wall, and whether the ball can skip through a paddle
// in a single 60 FPS frame.
//
// Usage:
//
//	analyze [files...]
//
// With no arguments every *.json file in configs/ is analyzed.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wricardo/pong/game/engine"
)

// FrameRate is the update rate used for the tunnelling check.
const FrameRate = 60.0

// Analysis holds the derived timings of a rule set on a given court.
type Analysis struct {
	Width, Height float64

	// Seconds for the ball to go from one paddle face to the other.
	CrossingTime float64
	// Seconds for a paddle to go from the top bound to the bottom bound.
	PaddleTravelTime float64
	// Seconds between two wall bounces.
	WallBouncePeriod float64
	// Ball travel per axis in one frame.
	StepPerFrame float64

	CanCover   bool
	Tunnelling bool
}

// Analyze computes the heuristics for rules on a width x height court.
func Analyze(rules *engine.GameConfig, width, height float64) Analysis {
	gap := width - 2*(rules.Padding+rules.PaddleWidth) - rules.BallSize
	a := Analysis{
		Width:            width,
		Height:           height,
		CrossingTime:     gap / rules.BallSpeed,
		PaddleTravelTime: (height - rules.PaddleHeight) / rules.PlayerSpeed,
		WallBouncePeriod: (height - rules.BallSize) / rules.BallSpeed,
		StepPerFrame:     rules.BallSpeed / FrameRate,
	}
	a.CanCover = a.PaddleTravelTime <= a.CrossingTime
	a.Tunnelling = a.StepPerFrame > rules.PaddleWidth+rules.BallSize
	return a
}

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		var err error
		files, err = filepath.Glob(filepath.Join("configs", "*.json"))
		if err != nil {
			fmt.Printf("Error finding rule files: %v\n", err)
			os.Exit(1)
		}
	}

	failed := false
	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		if err := analyzeConfig(file, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func analyzeConfig(path string, w io.Writer) error {
	rules, err := engine.LoadGameConfig(path)
	if err != nil {
		return err
	}

	a := Analyze(rules, engine.DefaultScreenWidth, engine.DefaultScreenHeight)

	fmt.Fprintf(w, "Name: %s\n", rules.Name)
	fmt.Fprintf(w, "Court: %.0f x %.0f\n", a.Width, a.Height)
	fmt.Fprintf(w, "Ball crossing time: %.2fs\n", a.CrossingTime)
	fmt.Fprintf(w, "Paddle full travel: %.2fs\n", a.PaddleTravelTime)
	fmt.Fprintf(w, "Wall bounce period: %.2fs\n", a.WallBouncePeriod)
	fmt.Fprintf(w, "Ball step per frame: %.1f\n", a.StepPerFrame)

	if a.CanCover {
		fmt.Fprintf(w, "✅ A paddle can cover the court before the ball crosses\n")
	} else {
		fmt.Fprintf(w, "⚠️  WARNING: paddles need %.2fs to cover the court but the ball crosses in %.2fs\n",
			a.PaddleTravelTime, a.CrossingTime)
	}

	if a.Tunnelling {
		fmt.Fprintf(w, "⚠️  CRITICAL: the ball moves %.1f per frame and can pass through a paddle (%.0f + ball %.0f)\n",
			a.StepPerFrame, rules.PaddleWidth, rules.BallSize)
	} else {
		fmt.Fprintf(w, "✅ No tunnelling at %.0f FPS\n", FrameRate)
	}

	return nil
}
