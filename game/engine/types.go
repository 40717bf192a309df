package engine

import "image/color"

// Default rule constants for the classic game.
const (
	DefaultPaddleWidth  = 20.0
	DefaultPaddleHeight = 100.0
	DefaultBallSize     = 30.0
	DefaultPlayerSpeed  = 600.0 // units per second
	DefaultBallSpeed    = 400.0 // units per second, per axis
	DefaultPadding      = 40.0
	DefaultMiddleLine   = 2.0
	DefaultScoreOffset  = 40.0

	// Initial window size of the desktop host and court size of headless runs.
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 800

	// ScoreGap separates the two scores in the score text.
	ScoreGap = "          "
)

var (
	Background = color.Black
	Foreground = color.White
)

// Vec2 is a point or vector in screen space (origin top-left, y down).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Input is the held state of the four logical actions for one frame.
type Input struct {
	P1Up   bool `json:"p1_up"`
	P1Down bool `json:"p1_down"`
	P2Up   bool `json:"p2_up"`
	P2Down bool `json:"p2_down"`
}

// KeyBindings names the host keys bound to each action.
type KeyBindings struct {
	P1Up   string `json:"p1_up"`
	P1Down string `json:"p1_down"`
	P2Up   string `json:"p2_up"`
	P2Down string `json:"p2_down"`
}

// GameConfig holds the rule constants, loaded from JSON rule files.
type GameConfig struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	PaddleWidth  float64     `json:"paddle_width"`
	PaddleHeight float64     `json:"paddle_height"`
	BallSize     float64     `json:"ball_size"`
	PlayerSpeed  float64     `json:"player_speed"`
	BallSpeed    float64     `json:"ball_speed"`
	Padding      float64     `json:"padding"`
	MiddleLine   float64     `json:"middle_line"`
	ScoreOffset  float64     `json:"score_offset"`
	Keys         KeyBindings `json:"keys"`
}

// GameState is the complete simulation state.
type GameState struct {
	Score1  int  `json:"score1"`
	Score2  int  `json:"score2"`
	Paddle1 Vec2 `json:"paddle1"`
	Paddle2 Vec2 `json:"paddle2"`
	Ball    Vec2 `json:"ball"`
	BallVel Vec2 `json:"ball_vel"`

	// Frame counts the updates applied since initialisation.
	Frame int `json:"frame"`
}

// Surface is the drawing target handed to Render.
type Surface interface {
	// Size returns the current drawable width and height.
	Size() (width, height float64)
	FillRect(x, y, width, height float64, c color.Color) error
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c color.Color) error
	MeasureText(s string) (float64, error)
}

// Game is what a driver loop calls once per frame: Update, then Render.
type Game interface {
	Update(dt float64, in Input, width, height float64)
	Render(s Surface) error
}
