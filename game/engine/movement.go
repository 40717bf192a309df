package engine

import "math"

// MovePaddle shifts a paddle's centre by delta and keeps it on screen.
func MovePaddle(y, delta, paddleHeight, screenHeight float64) float64 {
	half := paddleHeight * 0.5
	return clamp(y+delta, half, screenHeight-half)
}

// MovePaddles applies one frame of player input. Up and down are applied one
// after the other, each clamped on its own.
func (gs *GameState) MovePaddles(in Input, dt float64, config *GameConfig, screenHeight float64) {
	step := config.PlayerSpeed * dt

	if in.P1Up {
		gs.Paddle1.Y = MovePaddle(gs.Paddle1.Y, -step, config.PaddleHeight, screenHeight)
	}
	if in.P1Down {
		gs.Paddle1.Y = MovePaddle(gs.Paddle1.Y, step, config.PaddleHeight, screenHeight)
	}
	if in.P2Up {
		gs.Paddle2.Y = MovePaddle(gs.Paddle2.Y, -step, config.PaddleHeight, screenHeight)
	}
	if in.P2Down {
		gs.Paddle2.Y = MovePaddle(gs.Paddle2.Y, step, config.PaddleHeight, screenHeight)
	}
}

// MoveBall integrates the ball position over dt.
func (gs *GameState) MoveBall(dt float64) {
	gs.Ball.X += gs.BallVel.X * dt
	gs.Ball.Y += gs.BallVel.Y * dt
}

// CheckScore awards a point when the ball has left the court horizontally
// and puts the ball back at the centre. Velocity is left untouched.
// It returns 1 or 2 for the scoring player, 0 otherwise.
func (gs *GameState) CheckScore(screenWidth, screenHeight float64) int {
	center := Vec2{X: screenWidth * 0.5, Y: screenHeight * 0.5}

	if gs.Ball.X < 0 {
		gs.Ball = center
		gs.Score2++
		return 2
	}

	if gs.Ball.X > screenWidth {
		gs.Ball = center
		gs.Score1++
		return 1
	}

	return 0
}

// BounceWalls keeps the ball between the top and bottom edges, pointing the
// vertical velocity away from the wall it touched.
func (gs *GameState) BounceWalls(ballSize, screenHeight float64) {
	half := ballSize * 0.5

	if gs.Ball.Y < half {
		gs.Ball.Y = half
		gs.BallVel.Y = math.Abs(gs.BallVel.Y)
	}

	if gs.Ball.Y > screenHeight-half {
		gs.Ball.Y = screenHeight - half
		gs.BallVel.Y = -math.Abs(gs.BallVel.Y)
	}
}

// BouncePaddles sends the ball back toward the opponent when it overlaps a
// paddle. Only the sign of the horizontal velocity changes; the ball is not
// pushed out of the paddle.
func (gs *GameState) BouncePaddles(config *GameConfig) {
	ball := gs.BallRect(config)

	if ball.Overlaps(gs.PaddleRect(1, config)) {
		gs.BallVel.X = math.Abs(gs.BallVel.X)
	}

	if ball.Overlaps(gs.PaddleRect(2, config)) {
		gs.BallVel.X = -math.Abs(gs.BallVel.X)
	}
}

// BallRect returns the ball's bounding box.
func (gs *GameState) BallRect(config *GameConfig) Rect {
	return Rect{Center: gs.Ball, Width: config.BallSize, Height: config.BallSize}
}

// PaddleRect returns the bounding box of paddle 1 or 2.
func (gs *GameState) PaddleRect(player int, config *GameConfig) Rect {
	center := gs.Paddle1
	if player == 2 {
		center = gs.Paddle2
	}
	return Rect{Center: center, Width: config.PaddleWidth, Height: config.PaddleHeight}
}

// Step advances the state by one frame.
func (gs *GameState) Step(dt float64, in Input, config *GameConfig, screenWidth, screenHeight float64) {
	gs.MovePaddles(in, dt, config, screenHeight)
	gs.MoveBall(dt)
	gs.CheckScore(screenWidth, screenHeight)
	gs.BounceWalls(config.BallSize, screenHeight)
	gs.BouncePaddles(config)
	gs.Frame++
}
