package loop

import "image/color"

// GlyphAdvance is the width of one rune on a HeadlessSurface, matching the
// 7x13 bitmap face used by the desktop host.
const GlyphAdvance = 7.0

// HeadlessSurface is a fixed-size Surface that discards drawing and keeps
// counts. It is used by headless runs and tests.
type HeadlessSurface struct {
	Width, Height float64

	Rects    int
	Texts    int
	LastText string
}

// NewHeadlessSurface creates a surface of the given size.
func NewHeadlessSurface(width, height float64) *HeadlessSurface {
	return &HeadlessSurface{Width: width, Height: height}
}

// Size implements engine.Surface.
func (s *HeadlessSurface) Size() (float64, float64) {
	return s.Width, s.Height
}

// FillRect implements engine.Surface.
func (s *HeadlessSurface) FillRect(x, y, w, h float64, c color.Color) error {
	s.Rects++
	return nil
}

// DrawText implements engine.Surface.
func (s *HeadlessSurface) DrawText(text string, x, y float64, c color.Color) error {
	s.Texts++
	s.LastText = text
	return nil
}

// MeasureText implements engine.Surface.
func (s *HeadlessSurface) MeasureText(text string) (float64, error) {
	return float64(len([]rune(text))) * GlyphAdvance, nil
}
