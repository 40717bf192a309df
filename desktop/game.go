package desktop

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/game/loop"
)

const (
	WindowTitle  = "Pong"
	WindowWidth  = engine.DefaultScreenWidth
	WindowHeight = engine.DefaultScreenHeight
)

// Game hosts a Pong engine inside ebiten.
type Game struct {
	ctx      context.Context
	engine   engine.Engine
	clock    loop.Clock
	input    loop.InputSource
	observer loop.Observer

	width, height int

	// set by Draw, returned from the next Update
	err error
}

// NewGame creates an ebiten game around eng. observer may be nil.
func NewGame(ctx context.Context, eng engine.Engine, input loop.InputSource, observer loop.Observer) *Game {
	return &Game{
		ctx:      ctx,
		engine:   eng,
		clock:    loop.NewWallClock(),
		input:    input,
		observer: observer,
		width:    WindowWidth,
		height:   WindowHeight,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	dt := g.clock.Delta()
	in := g.input.Poll()
	g.engine.Update(dt, in, float64(g.width), float64(g.height))

	if g.observer != nil {
		g.observer(g.engine.GetState())
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(engine.Background)
	if err := g.engine.Render(screenSurface{img: screen}); err != nil {
		g.err = fmt.Errorf("render: %w", err)
	}
}

// Layout implements ebiten.Game. The logical screen follows the window so
// the court resizes with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and plays a match with rules until the window is
// closed, ctx is done or a frame fails to render.
func Run(ctx context.Context, rules *engine.GameConfig, observer loop.Observer) error {
	kb, err := NewKeyboard(rules.Keys)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(rules, WindowWidth, WindowHeight)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(ctx, eng, kb, observer))
}
