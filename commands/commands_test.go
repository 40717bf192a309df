package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/pong/game/config"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/game/loop"
)

func writeRules(t *testing.T, dir, file string, rules *engine.GameConfig) string {
	t.Helper()
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal rules: %v", err)
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write rules: %v", err)
	}
	return path
}

func newConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeRules(t, dir, "classic.json", engine.DefaultConfig())

	rally := engine.DefaultConfig()
	rally.Name = "rally"
	rally.Description = "Faster ball"
	rally.BallSpeed = 600
	writeRules(t, dir, "rally.json", rally)

	return dir
}

type playCall struct {
	rules    *engine.GameConfig
	observer loop.Observer
}

func newTestApp() (*App, *bytes.Buffer, *[]playCall) {
	var calls []playCall
	out := &bytes.Buffer{}
	app := &App{
		Out: out,
		Play: func(ctx context.Context, rules *engine.GameConfig, observer loop.Observer) error {
			calls = append(calls, playCall{rules, observer})
			return nil
		},
	}
	return app, out, &calls
}

func TestPlay_DefaultCommand(t *testing.T) {
	app, _, calls := newTestApp()
	dir := newConfigDir(t)

	if err := app.Run(context.Background(), []string{"pong", "--config-dir", dir}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 {
		t.Fatalf("Expected one play call, got %d", len(*calls))
	}
	if (*calls)[0].rules.Name != "classic" {
		t.Errorf("Expected classic rules, got %q", (*calls)[0].rules.Name)
	}
	if (*calls)[0].observer != nil {
		t.Error("Expected no observer without --spectate")
	}
}

func TestPlay_NamedRules(t *testing.T) {
	app, _, calls := newTestApp()
	dir := newConfigDir(t)

	args := []string{"pong", "--config-dir", dir, "--rules", "rally", "play"}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0].rules.BallSpeed != 600 {
		t.Fatalf("Expected rally rules, got %+v", *calls)
	}
}

func TestPlay_RulesFromEnv(t *testing.T) {
	app, _, calls := newTestApp()
	dir := newConfigDir(t)
	t.Setenv("PONG_CONFIG_DIR", dir)
	t.Setenv("PONG_RULES", "rally")

	if err := app.Run(context.Background(), []string{"pong"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0].rules.Name != "rally" {
		t.Fatalf("Expected rally rules from the environment, got %+v", *calls)
	}
}

func TestPlay_RulesFile(t *testing.T) {
	app, _, calls := newTestApp()

	custom := engine.DefaultConfig()
	custom.Name = "custom"
	path := writeRules(t, t.TempDir(), "custom.json", custom)

	args := []string{"pong", "--config-dir", filepath.Join(t.TempDir(), "missing"), "--rules", path}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0].rules.Name != "custom" {
		t.Fatalf("Expected rules loaded from file, got %+v", *calls)
	}
}

func TestPlay_MissingConfigDirUsesBuiltIn(t *testing.T) {
	app, _, calls := newTestApp()

	args := []string{"pong", "--config-dir", filepath.Join(t.TempDir(), "missing")}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0].rules.Name != "classic" {
		t.Fatalf("Expected built-in rules, got %+v", *calls)
	}
}

func TestPlay_UnknownRules(t *testing.T) {
	app, _, calls := newTestApp()
	dir := newConfigDir(t)

	err := app.Run(context.Background(), []string{"pong", "--config-dir", dir, "--rules", "nope"})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
	if len(*calls) != 0 {
		t.Error("Play should not be called when rules fail to load")
	}
}

func TestPlay_NoHost(t *testing.T) {
	app := &App{Out: &bytes.Buffer{}}
	if err := app.Run(context.Background(), []string{"pong", "play"}); err == nil {
		t.Error("Expected error without a play host")
	}
}

func TestPlay_SpectateInstallsObserver(t *testing.T) {
	app, _, calls := newTestApp()
	dir := newConfigDir(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	args := []string{"pong", "--config-dir", dir, "--spectate", "127.0.0.1:0"}
	if err := app.Run(ctx, args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(*calls) != 1 || (*calls)[0].observer == nil {
		t.Fatal("Expected a spectator observer")
	}
	// Observing must not block even with no spectators connected.
	for i := 0; i < 100; i++ {
		(*calls)[0].observer(engine.GameState{Frame: i})
	}
}

func runHeadless(t *testing.T, args ...string) HeadlessResult {
	t.Helper()
	app, out, _ := newTestApp()
	dir := newConfigDir(t)

	full := append([]string{"pong", "--config-dir", dir, "headless"}, args...)
	if err := app.Run(context.Background(), full); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var result HeadlessResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse output %q: %v", out.String(), err)
	}
	return result
}

func TestHeadless_Script(t *testing.T) {
	result := runHeadless(t, "--frames", "4", "--dt", "0.25", "--script", "p1-up@0-2,p2-down")

	if result.Frames != 4 {
		t.Errorf("Expected 4 frames, got %d", result.Frames)
	}
	if result.Elapsed != 1 {
		t.Errorf("Expected 1 second elapsed, got %v", result.Elapsed)
	}
	if result.Rules != "classic" {
		t.Errorf("Expected classic rules, got %q", result.Rules)
	}
	if result.State.Paddle1.Y != 100 {
		t.Errorf("Expected paddle 1 at 100, got %v", result.State.Paddle1.Y)
	}
	// Held down for a full second at 600 units/s from 400, clamped at 750.
	if result.State.Paddle2.Y != 750 {
		t.Errorf("Expected paddle 2 at the bottom (750), got %v", result.State.Paddle2.Y)
	}
	if result.State.Frame != 4 {
		t.Errorf("Expected state frame 4, got %d", result.State.Frame)
	}
}

func TestHeadless_CourtSize(t *testing.T) {
	result := runHeadless(t, "--frames", "1", "--dt", "0.25", "--width", "640", "--height", "480")

	// Ball starts at the centre and moves (-100, +100) in a quarter second.
	if result.State.Ball.X != 220 || result.State.Ball.Y != 340 {
		t.Errorf("Expected ball at (220, 340), got %+v", result.State.Ball)
	}
}

func TestHeadless_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero dt", []string{"--dt", "0"}},
		{"negative dt", []string{"--dt=-1"}},
		{"bad script", []string{"--script", "p9-up"}},
		{"zero width", []string{"--width", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp()
			args := append([]string{"pong", "--config-dir", newConfigDir(t), "headless", "--frames", "1"}, tt.args...)
			if err := app.Run(context.Background(), args); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestHeadless_UntilCancelled(t *testing.T) {
	app, out, _ := newTestApp()
	dir := newConfigDir(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	args := []string{"pong", "--config-dir", dir, "headless", "--frames", "0"}
	if err := app.Run(ctx, args); err != nil {
		t.Fatalf("Expected a clean stop, got %v", err)
	}
	if !strings.Contains(out.String(), `"frames": 0`) {
		t.Errorf("Expected zero frames reported, got %s", out.String())
	}
}

func TestValidateCommand(t *testing.T) {
	dir := newConfigDir(t)

	t.Run("all valid", func(t *testing.T) {
		app, out, _ := newTestApp()
		if err := app.Run(context.Background(), []string{"pong", "--config-dir", dir, "validate"}); err != nil {
			t.Fatalf("Expected valid rules, got %v\n%s", err, out.String())
		}
		if !strings.Contains(out.String(), "classic.json") || !strings.Contains(out.String(), "rally.json") {
			t.Errorf("Expected both files in report, got %s", out.String())
		}
		if !strings.Contains(out.String(), "All rule files are valid") {
			t.Errorf("Expected summary line, got %s", out.String())
		}
	})

	t.Run("explicit invalid file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(bad, []byte(`{"name":"bad"}`), 0644); err != nil {
			t.Fatal(err)
		}

		app, out, _ := newTestApp()
		err := app.Run(context.Background(), []string{"pong", "validate", filepath.Join(dir, "classic.json"), bad})
		if err == nil {
			t.Fatal("Expected error for invalid file")
		}
		if !strings.Contains(out.String(), "❌ INVALID") {
			t.Errorf("Expected INVALID in report, got %s", out.String())
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		app, _, _ := newTestApp()
		if err := app.Run(context.Background(), []string{"pong", "--config-dir", t.TempDir(), "validate"}); err == nil {
			t.Error("Expected error for a directory without rule files")
		}
	})
}

func TestConfigsCommand(t *testing.T) {
	app, out, _ := newTestApp()
	dir := newConfigDir(t)

	if err := app.Run(context.Background(), []string{"pong", "--config-dir", dir, "configs"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 rule sets, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "* classic") {
		t.Errorf("Expected classic marked as default, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  rally") {
		t.Errorf("Expected rally listed, got %q", lines[1])
	}
}

func TestConfigsCommand_MissingDir(t *testing.T) {
	app, _, _ := newTestApp()
	if err := app.Run(context.Background(), []string{"pong", "--config-dir", filepath.Join(t.TempDir(), "x"), "configs"}); err == nil {
		t.Error("Expected error for missing config directory")
	}
}
