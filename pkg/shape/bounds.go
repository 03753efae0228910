package shape

import (
	"math"

	"github.com/llgcode/draw2d"
)

// PathBounds computes an axis-aligned bounding rectangle for a path.
// Curve control points and full arc extents are included, so the result
// can be slightly larger than the exact filled area but never smaller.
func PathBounds(p *draw2d.Path) Rect {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	i := 0
	for _, cmp := range p.Components {
		switch cmp {
		case draw2d.MoveToCmp, draw2d.LineToCmp:
			grow(p.Points[i], p.Points[i+1])
			i += 2
		case draw2d.QuadCurveToCmp:
			grow(p.Points[i], p.Points[i+1])
			grow(p.Points[i+2], p.Points[i+3])
			i += 4
		case draw2d.CubicCurveToCmp:
			grow(p.Points[i], p.Points[i+1])
			grow(p.Points[i+2], p.Points[i+3])
			grow(p.Points[i+4], p.Points[i+5])
			i += 6
		case draw2d.ArcToCmp:
			cx, cy := p.Points[i], p.Points[i+1]
			rx, ry := p.Points[i+2], p.Points[i+3]
			grow(cx-rx, cy-ry)
			grow(cx+rx, cy+ry)
			i += 6
		case draw2d.CloseCmp:
			// no points
		}
	}

	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
