package engine

import "fmt"

// Engine is the full simulation API: the per-frame Game contract plus the
// accessors hosts and tools use.
type Engine interface {
	Game

	GetState() GameState
	SetState(state *GameState) error
	Reset(screenWidth, screenHeight float64) GameState
	GetScore() (player1, player2 int)
	GetConfig() *GameConfig
}

// GameEngine implements Engine. It is owned by a single frame loop and is not
// safe for concurrent use.
type GameEngine struct {
	state  *GameState
	config *GameConfig
}

// NewEngine creates a simulation for a screen of the given size.
func NewEngine(config *GameConfig, screenWidth, screenHeight float64) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config, screenWidth, screenHeight),
	}, nil
}

// NewEngineWithDefaults creates a simulation using the classic rules.
func NewEngineWithDefaults(screenWidth, screenHeight float64) *GameEngine {
	config := DefaultConfig()
	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config, screenWidth, screenHeight),
	}
}

// Update advances the simulation by dt seconds. Screen dimensions are those
// of the current frame.
func (e *GameEngine) Update(dt float64, in Input, screenWidth, screenHeight float64) {
	e.state.Step(dt, in, e.config, screenWidth, screenHeight)
}

// Render draws the current frame. It never changes the state.
func (e *GameEngine) Render(s Surface) error {
	width, height := s.Size()
	c := e.config
	gs := e.state

	divider := Rect{
		Center: Vec2{X: width * 0.5, Y: height * 0.5},
		Width:  c.MiddleLine,
		Height: height,
	}
	if err := fillRect(s, divider); err != nil {
		return fmt.Errorf("draw divider: %w", err)
	}

	if err := fillRect(s, gs.PaddleRect(1, c)); err != nil {
		return fmt.Errorf("draw paddle 1: %w", err)
	}
	if err := fillRect(s, gs.PaddleRect(2, c)); err != nil {
		return fmt.Errorf("draw paddle 2: %w", err)
	}
	if err := fillRect(s, gs.BallRect(c)); err != nil {
		return fmt.Errorf("draw ball: %w", err)
	}

	score := ScoreText(gs.Score1, gs.Score2)
	textWidth, err := s.MeasureText(score)
	if err != nil {
		return fmt.Errorf("measure score: %w", err)
	}
	if err := s.DrawText(score, width*0.5-textWidth*0.5, c.ScoreOffset, Foreground); err != nil {
		return fmt.Errorf("draw score: %w", err)
	}

	return nil
}

func fillRect(s Surface, r Rect) error {
	tl := r.TopLeft()
	return s.FillRect(tl.X, tl.Y, r.Width, r.Height, Foreground)
}

// GetState returns a copy of the current state.
func (e *GameEngine) GetState() GameState {
	return *e.state
}

// SetState replaces the current state.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	s := *state
	e.state = &s
	return nil
}

// Reset starts a new match on a screen of the given size.
func (e *GameEngine) Reset(screenWidth, screenHeight float64) GameState {
	e.state = InitGameStateFromConfig(e.config, screenWidth, screenHeight)
	return *e.state
}

// GetScore returns both players' points.
func (e *GameEngine) GetScore() (int, int) {
	return e.state.Score1, e.state.Score2
}

// GetConfig returns the rule set in use.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}
