package loop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/pong/game/engine"
)

// ErrInvalidScript is returned for malformed input scripts.
var ErrInvalidScript = errors.New("invalid input script")

// InputSource provides the held actions for the current frame.
type InputSource interface {
	Poll() engine.Input
}

// Action names accepted in input scripts.
const (
	ActionP1Up   = "p1-up"
	ActionP1Down = "p1-down"
	ActionP2Up   = "p2-up"
	ActionP2Down = "p2-down"
)

type hold struct {
	action     string
	start, end int
}

// ScriptedInput replays actions held over frame ranges. Each Poll advances
// one frame.
type ScriptedInput struct {
	holds []hold
	frame int
}

// ParseScript builds a ScriptedInput from entries like "p1-up@0-60", which
// holds p1-up on frames 0 through 59. Entries are comma separated; an entry
// without a range ("p2-down") is held forever. An empty script holds nothing.
func ParseScript(script string) (*ScriptedInput, error) {
	s := &ScriptedInput{}

	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		action, span, hasSpan := strings.Cut(entry, "@")
		action = strings.ToLower(strings.TrimSpace(action))
		switch action {
		case ActionP1Up, ActionP1Down, ActionP2Up, ActionP2Down:
		default:
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidScript, action)
		}

		h := hold{action: action, start: 0, end: -1}
		if hasSpan {
			from, to, ok := strings.Cut(span, "-")
			if !ok {
				return nil, fmt.Errorf("%w: range %q must be start-end", ErrInvalidScript, span)
			}
			start, err := strconv.Atoi(strings.TrimSpace(from))
			if err != nil {
				return nil, fmt.Errorf("%w: bad start frame in %q", ErrInvalidScript, entry)
			}
			end, err := strconv.Atoi(strings.TrimSpace(to))
			if err != nil {
				return nil, fmt.Errorf("%w: bad end frame in %q", ErrInvalidScript, entry)
			}
			if start < 0 || end <= start {
				return nil, fmt.Errorf("%w: empty or negative range in %q", ErrInvalidScript, entry)
			}
			h.start, h.end = start, end
		}

		s.holds = append(s.holds, h)
	}

	return s, nil
}

// Poll implements InputSource.
func (s *ScriptedInput) Poll() engine.Input {
	in := s.At(s.frame)
	s.frame++
	return in
}

// At returns the input for a given frame without advancing.
func (s *ScriptedInput) At(frame int) engine.Input {
	var in engine.Input
	for _, h := range s.holds {
		if frame < h.start || (h.end >= 0 && frame >= h.end) {
			continue
		}
		switch h.action {
		case ActionP1Up:
			in.P1Up = true
		case ActionP1Down:
			in.P1Down = true
		case ActionP2Up:
			in.P2Up = true
		case ActionP2Down:
			in.P2Down = true
		}
	}
	return in
}

// InputFunc adapts a function to InputSource.
type InputFunc func() engine.Input

// Poll implements InputSource.
func (f InputFunc) Poll() engine.Input {
	return f()
}
