package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/pong/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateRulesFile loads and checks a single rules file: strict JSON
// decoding, field validation, distinct key bindings and whether the court
// objects fit a window of the default size.
func ValidateRulesFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var rules engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rules); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateGameConfig(&rules); err != nil {
		result.fail("%v", err)
		return result
	}

	// Key bindings
	seen := map[string]string{}
	bindings := []struct{ action, key string }{
		{"p1_up", rules.Keys.P1Up},
		{"p1_down", rules.Keys.P1Down},
		{"p2_up", rules.Keys.P2Up},
		{"p2_down", rules.Keys.P2Down},
	}
	for _, b := range bindings {
		k := strings.ToLower(b.key)
		if other, dup := seen[k]; dup {
			result.fail("Key %q bound to both %s and %s", b.key, other, b.action)
			continue
		}
		seen[k] = b.action
	}

	// Court fit
	w, h := float64(engine.DefaultScreenWidth), float64(engine.DefaultScreenHeight)
	if rules.PaddleHeight > h {
		result.fail("paddle_height %v exceeds the court height %v", rules.PaddleHeight, h)
	}
	if rules.BallSize >= h {
		result.fail("ball_size %v does not fit the court height %v", rules.BallSize, h)
	}
	if 2*(rules.Padding+rules.PaddleWidth) >= w {
		result.fail("paddles overlap: 2*(padding+paddle_width) = %v, court width %v",
			2*(rules.Padding+rules.PaddleWidth), w)
	}

	if result.Valid {
		result.Errors = append(result.Errors,
			fmt.Sprintf("✓ Fits a %dx%d court", engine.DefaultScreenWidth, engine.DefaultScreenHeight))
	}

	return result
}

// WriteReport prints the results in a concise report and reports whether
// every file was valid.
func WriteReport(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All rule files are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some rule files have errors")
	}
	return allValid
}

// validate checks the files given as arguments, or every *.json file in the
// config directory when there are none.
func (a *App) validate(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		var err error
		files, err = filepath.Glob(filepath.Join(cmd.String("config-dir"), "*.json"))
		if err != nil {
			return fmt.Errorf("finding rule files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no rule files in %s", cmd.String("config-dir"))
		}
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateRulesFile(file))
	}

	if !WriteReport(a.out(), results) {
		return errors.New("some rule files have errors")
	}
	return nil
}
