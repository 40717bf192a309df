package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfig returns the classic rule set.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:         "classic",
		Description:  "Classic two-player Pong",
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		BallSize:     DefaultBallSize,
		PlayerSpeed:  DefaultPlayerSpeed,
		BallSpeed:    DefaultBallSpeed,
		Padding:      DefaultPadding,
		MiddleLine:   DefaultMiddleLine,
		ScoreOffset:  DefaultScoreOffset,
		Keys: KeyBindings{
			P1Up:   "W",
			P1Down: "S",
			P2Up:   "ArrowUp",
			P2Down: "ArrowDown",
		},
	}
}

// ValidateGameConfig checks that a rule set describes a playable game.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	positive := []struct {
		field string
		value float64
	}{
		{"paddle_width", config.PaddleWidth},
		{"paddle_height", config.PaddleHeight},
		{"ball_size", config.BallSize},
		{"player_speed", config.PlayerSpeed},
		{"ball_speed", config.BallSpeed},
		{"middle_line", config.MiddleLine},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("config validation: %s must be a positive finite number, got %v", p.field, p.value)
		}
	}

	// Padding and score offset may be zero but not negative.
	if config.Padding < 0 || math.IsNaN(config.Padding) || math.IsInf(config.Padding, 0) {
		return fmt.Errorf("config validation: padding must be a non-negative finite number, got %v", config.Padding)
	}
	if config.ScoreOffset < 0 || math.IsNaN(config.ScoreOffset) || math.IsInf(config.ScoreOffset, 0) {
		return fmt.Errorf("config validation: score_offset must be a non-negative finite number, got %v", config.ScoreOffset)
	}

	keys := map[string]string{
		"p1_up":   config.Keys.P1Up,
		"p1_down": config.Keys.P1Down,
		"p2_up":   config.Keys.P2Up,
		"p2_down": config.Keys.P2Down,
	}
	for action, key := range keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("config validation: keys.%s is required", action)
		}
	}

	return nil
}

// LoadGameConfig loads a rule set from a JSON file.
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filepath.Base(filename), err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InitGameStateFromConfig lays out paddles and ball for a fresh match on a
// screen of the given size. A nil config uses DefaultConfig.
func InitGameStateFromConfig(config *GameConfig, screenWidth, screenHeight float64) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	halfWidth, halfHeight := screenWidth*0.5, screenHeight*0.5
	paddleHalf := config.PaddleWidth * 0.5

	return &GameState{
		Paddle1: Vec2{X: paddleHalf + config.Padding, Y: halfHeight},
		Paddle2: Vec2{X: screenWidth - paddleHalf - config.Padding, Y: halfHeight},
		Ball:    Vec2{X: halfWidth, Y: halfHeight},
		BallVel: Vec2{X: -config.BallSpeed, Y: config.BallSpeed},
	}
}
