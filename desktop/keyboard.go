package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wricardo/pong/game/engine"
)

// Keyboard polls the bound keys each frame. It implements loop.InputSource.
type Keyboard struct {
	p1Up, p1Down ebiten.Key
	p2Up, p2Down ebiten.Key
}

// NewKeyboard resolves key names such as "W" or "ArrowUp" to ebiten keys.
func NewKeyboard(keys engine.KeyBindings) (*Keyboard, error) {
	kb := &Keyboard{}

	bindings := []struct {
		action string
		name   string
		key    *ebiten.Key
	}{
		{"p1_up", keys.P1Up, &kb.p1Up},
		{"p1_down", keys.P1Down, &kb.p1Down},
		{"p2_up", keys.P2Up, &kb.p2Up},
		{"p2_down", keys.P2Down, &kb.p2Down},
	}

	for _, b := range bindings {
		if err := b.key.UnmarshalText([]byte(b.name)); err != nil {
			return nil, fmt.Errorf("keys.%s: %w", b.action, err)
		}
	}

	return kb, nil
}

// Poll reads the held state of every bound key.
func (k *Keyboard) Poll() engine.Input {
	return engine.Input{
		P1Up:   ebiten.IsKeyPressed(k.p1Up),
		P1Down: ebiten.IsKeyPressed(k.p1Down),
		P2Up:   ebiten.IsKeyPressed(k.p2Up),
		P2Down: ebiten.IsKeyPressed(k.p2Down),
	}
}
