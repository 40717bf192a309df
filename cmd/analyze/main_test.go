package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/pong/game/engine"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyze_Classic(t *testing.T) {
	a := Analyze(engine.DefaultConfig(), 1280, 800)

	// 1280 - 2*(40+20) - 30 = 1130 at 400/s
	if !approx(a.CrossingTime, 1130.0/400.0) {
		t.Errorf("CrossingTime = %v", a.CrossingTime)
	}
	// (800 - 100) / 600
	if !approx(a.PaddleTravelTime, 700.0/600.0) {
		t.Errorf("PaddleTravelTime = %v", a.PaddleTravelTime)
	}
	// (800 - 30) / 400
	if !approx(a.WallBouncePeriod, 770.0/400.0) {
		t.Errorf("WallBouncePeriod = %v", a.WallBouncePeriod)
	}
	if !a.CanCover {
		t.Error("Expected classic paddles to cover the court")
	}
	if a.Tunnelling {
		t.Error("Expected no tunnelling for classic rules")
	}
}

func TestAnalyze_Warnings(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *engine.GameConfig)
		canCover   bool
		tunnelling bool
	}{
		{"slow paddles", func(c *engine.GameConfig) { c.PlayerSpeed = 100 }, false, false},
		{"very fast ball", func(c *engine.GameConfig) { c.BallSpeed = 6000 }, false, true},
		{"thin paddle", func(c *engine.GameConfig) { c.PaddleWidth = 1; c.BallSize = 1 }, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := engine.DefaultConfig()
			tt.mutate(rules)
			a := Analyze(rules, 1280, 800)
			if a.CanCover != tt.canCover {
				t.Errorf("CanCover = %v, expected %v", a.CanCover, tt.canCover)
			}
			if a.Tunnelling != tt.tunnelling {
				t.Errorf("Tunnelling = %v, expected %v", a.Tunnelling, tt.tunnelling)
			}
		})
	}
}

func TestAnalyzeConfig_ValidFile(t *testing.T) {
	data, err := json.Marshal(engine.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "classic.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := analyzeConfig(path, &buf); err != nil {
		t.Fatalf("analyzeConfig failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Name: classic", "Court: 1280 x 800", "Ball crossing time: 2.8", "✅ A paddle can cover", "✅ No tunnelling"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestAnalyzeConfig_InvalidFile(t *testing.T) {
	if err := analyzeConfig("/non/existent/file.json", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestAnalyzeConfig_InvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", "ball_speed": 0}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := analyzeConfig(path, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for invalid rules")
	}
}

func TestAnalyze_ShippedConfigs(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "configs", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("configs directory not found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			rules, err := engine.LoadGameConfig(file)
			if err != nil {
				t.Fatalf("LoadGameConfig failed: %v", err)
			}
			a := Analyze(rules, engine.DefaultScreenWidth, engine.DefaultScreenHeight)
			if !a.CanCover || a.Tunnelling {
				t.Errorf("Shipped rules should be playable: %+v", a)
			}
		})
	}
}
