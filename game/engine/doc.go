// Package engine provides the core simulation for two-player Pong.
//
// The engine package implements:
//   - Paddle movement from held keys, clamped to the screen
//   - Ball motion with simple Euler integration
//   - Scoring when the ball leaves the court, with a reset to centre
//   - Wall and paddle bounces by velocity sign normalisation
//   - Rendering through a narrow Surface interface
//
// Core Types:
//
// Game is the two-method contract a driver loop calls once per frame:
// Update with the elapsed time, input snapshot and screen size, then Render
// with a drawing surface. GameEngine implements it along with the Engine
// accessors. GameConfig holds the rule constants; DefaultConfig returns the
// classic values.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults(1280, 800)
//
//	for {
//		gameEngine.Update(dt, engine.Input{P1Up: true}, 1280, 800)
//		if err := gameEngine.Render(surface); err != nil {
//			return err
//		}
//	}
//
// Frame Order:
//
// Update moves the paddles, moves the ball, checks for a point, bounces the
// ball off the top and bottom walls, then off the paddles. The order matters:
// a ball that both leaves the court and crosses a wall in one frame is reset
// first and never bounces.
package engine
