package engine

import "fmt"

// Rect is an axis-aligned rectangle described by its centre and size.
type Rect struct {
	Center        Vec2
	Width, Height float64
}

// Overlaps reports whether r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	rw, rh := r.Width*0.5, r.Height*0.5
	ow, oh := o.Width*0.5, o.Height*0.5
	return r.Center.X-rw < o.Center.X+ow &&
		r.Center.X+rw > o.Center.X-ow &&
		r.Center.Y-rh < o.Center.Y+oh &&
		r.Center.Y+rh > o.Center.Y-oh
}

// TopLeft returns the corner used by draw primitives.
func (r Rect) TopLeft() Vec2 {
	return Vec2{X: r.Center.X - r.Width*0.5, Y: r.Center.Y - r.Height*0.5}
}

// ScoreText formats the scoreboard line.
func ScoreText(score1, score2 int) string {
	return fmt.Sprintf("%d%s%d", score1, ScoreGap, score2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
