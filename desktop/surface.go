package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face font.Face = basicfont.Face7x13

// screenSurface adapts an ebiten image to engine.Surface.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s screenSurface) FillRect(x, y, w, h float64, c color.Color) error {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
	return nil
}

// DrawText takes the top-left corner; text.Draw wants the baseline.
func (s screenSurface) DrawText(str string, x, y float64, c color.Color) error {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(s.img, str, face, int(math.Round(x)), int(math.Round(y))+ascent, c)
	return nil
}

func (s screenSurface) MeasureText(str string) (float64, error) {
	return float64(font.MeasureString(face, str).Ceil()), nil
}
