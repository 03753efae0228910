package shape

import (
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
)

// Rect is the target rectangle for an outline, in the coordinate space of
// the raster canvas (y grows downwards).
type Rect struct {
	X, Y, W, H float64
}

// Outline is the closed vector boundary of a shape within a rectangle.
//
// Path is the silhouette. It may contain additional closed subpaths
// (cutouts such as the label's string hole or the filmstrip's sprocket
// holes) which must be filled with the even-odd rule so they punch through.
//
// For composite variants Window is the region the photo is clipped to,
// and Frame is the solid color painted behind it through Path. For simple
// variants Window is nil and Path itself is the photo clip.
type Outline struct {
	Path   *draw2d.Path
	Window *draw2d.Path
	Frame  color.Color
}

var (
	frameWhite = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	filmGray   = color.RGBA{R: 26, G: 26, B: 30, A: 255}
)

// OutlineFor constructs the outline for the given variant, scaled to the
// given rectangle. It is a pure function: same variant and rect, same
// outline. The rect must be non-degenerate (positive width and height);
// callers are expected to reject degenerate rects beforehand.
func OutlineFor(v Variant, r Rect) Outline {
	switch v {
	case Stamp:
		return Outline{Path: stampPath(r)}
	case Circle:
		return Outline{Path: circlePath(r)}
	case Ticket:
		return Outline{Path: ticketPath(r)}
	case Label:
		return Outline{Path: labelPath(r)}
	case Torn:
		return Outline{Path: tornPath(r)}
	case FramedPhoto:
		p, w := framedPhotoPaths(r)
		return Outline{Path: p, Window: w, Frame: frameWhite}
	case Filmstrip:
		p, w := filmstripPaths(r)
		return Outline{Path: p, Window: w, Frame: filmGray}
	default:
		return Outline{Path: rectanglePath(r)}
	}
}

// stampPath builds a postage stamp: the rect inset by one perforation
// radius, each edge replaced by a run of outward scalloped arcs.
// Scallop radius is 2.5% of the width, nominal pitch 8%.
func stampPath(r Rect) *draw2d.Path {
	sr := 0.025 * r.W // scallop radius, also the inset
	x0 := r.X + sr
	y0 := r.Y + sr
	x1 := r.X + r.W - sr
	y1 := r.Y + r.H - sr

	pitch := 0.08 * r.W
	nx := scallopCount(x1-x0, pitch)
	ny := scallopCount(y1-y0, pitch)
	sx := (x1 - x0) / float64(nx)
	sy := (y1 - y0) / float64(ny)

	p := &draw2d.Path{}
	p.MoveTo(x0, y0)
	// top, left to right, bulging up
	for i := 0; i < nx; i++ {
		c := x0 + (float64(i)+0.5)*sx
		p.ArcTo(c, y0, sr, sr, math.Pi, math.Pi)
	}
	p.LineTo(x1, y0)
	// right, top to bottom, bulging right
	for i := 0; i < ny; i++ {
		c := y0 + (float64(i)+0.5)*sy
		p.ArcTo(x1, c, sr, sr, -math.Pi/2, math.Pi)
	}
	p.LineTo(x1, y1)
	// bottom, right to left, bulging down
	for i := nx - 1; i >= 0; i-- {
		c := x0 + (float64(i)+0.5)*sx
		p.ArcTo(c, y1, sr, sr, 0, math.Pi)
	}
	p.LineTo(x0, y1)
	// left, bottom to top, bulging left
	for i := ny - 1; i >= 0; i-- {
		c := y0 + (float64(i)+0.5)*sy
		p.ArcTo(x0, c, sr, sr, math.Pi/2, math.Pi)
	}
	p.Close()

	return p
}

func scallopCount(length, pitch float64) int {
	n := int(length / pitch)
	if n < 1 {
		n = 1
	}
	return n
}

// circlePath builds an ellipse inscribed at 90% of the smaller rect
// dimension, centered.
func circlePath(r Rect) *draw2d.Path {
	radius := 0.45 * math.Min(r.W, r.H)
	cx := r.X + r.W/2
	cy := r.Y + r.H/2

	p := &draw2d.Path{}
	p.MoveTo(cx+radius, cy)
	p.ArcTo(cx, cy, radius, radius, 0, 2*math.Pi)
	p.Close()

	return p
}

// ticketPath builds a rounded rectangle with a circular notch bitten into
// the midpoint of the top and bottom edges (the long sides for the ticket
// aspect ratio). Notch radius is 6% of the width.
func ticketPath(r Rect) *draw2d.Path {
	cr := 0.04 * r.W
	nr := 0.06 * r.W
	mx := r.X + r.W/2
	x1 := r.X + r.W
	y1 := r.Y + r.H

	p := &draw2d.Path{}
	p.MoveTo(r.X+cr, r.Y)
	// top edge with inward notch; the negative sweep turns the arc into
	// the rect interior
	p.ArcTo(mx, r.Y, nr, nr, math.Pi, -math.Pi)
	p.LineTo(x1-cr, r.Y)
	p.ArcTo(x1-cr, r.Y+cr, cr, cr, -math.Pi/2, math.Pi/2)
	p.LineTo(x1, y1-cr)
	p.ArcTo(x1-cr, y1-cr, cr, cr, 0, math.Pi/2)
	// bottom edge, right to left, with inward notch
	p.ArcTo(mx, y1, nr, nr, 0, -math.Pi)
	p.LineTo(r.X+cr, y1)
	p.ArcTo(r.X+cr, y1-cr, cr, cr, math.Pi/2, math.Pi/2)
	p.LineTo(r.X, r.Y+cr)
	p.ArcTo(r.X+cr, r.Y+cr, cr, cr, math.Pi, math.Pi/2)
	p.Close()

	return p
}

// labelPath builds a luggage label: a rounded rectangle whose left edge is
// replaced by a triangular point (depth 12% of the width), with a small
// hole punched near the point for the string.
func labelPath(r Rect) *draw2d.Path {
	depth := 0.12 * r.W
	cr := 0.12 * r.H
	x1 := r.X + r.W
	y1 := r.Y + r.H
	my := r.Y + r.H/2

	p := &draw2d.Path{}
	p.MoveTo(r.X+depth, r.Y)
	p.LineTo(x1-cr, r.Y)
	p.ArcTo(x1-cr, r.Y+cr, cr, cr, -math.Pi/2, math.Pi/2)
	p.LineTo(x1, y1-cr)
	p.ArcTo(x1-cr, y1-cr, cr, cr, 0, math.Pi/2)
	p.LineTo(r.X+depth, y1)
	p.LineTo(r.X, my)
	p.Close()

	// string hole, punched by the even-odd fill
	hr := 0.035 * r.W
	hx := r.X + depth + 2*hr
	appendCircle(p, hx, my, hr)

	return p
}

// tornPath builds an organic torn-paper loop: a closed cubic Bézier curve
// through seven anchors at fixed fractions of the rect, so the outline is
// irregular but identical on every call.
func tornPath(r Rect) *draw2d.Path {
	anchors := [][2]float64{
		{0.06, 0.09},
		{0.46, 0.02},
		{0.93, 0.08},
		{0.97, 0.54},
		{0.88, 0.95},
		{0.42, 0.99},
		{0.03, 0.62},
	}

	n := len(anchors)
	pt := func(i int) (float64, float64) {
		a := anchors[(i%n+n)%n]
		return r.X + a[0]*r.W, r.Y + a[1]*r.H
	}

	p := &draw2d.Path{}
	x0, y0 := pt(0)
	p.MoveTo(x0, y0)
	for i := 0; i < n; i++ {
		// Catmull-Rom tangents converted to Bézier control points
		px, py := pt(i - 1)
		ax, ay := pt(i)
		bx, by := pt(i + 1)
		nx, ny := pt(i + 2)
		c1x := ax + (bx-px)/6
		c1y := ay + (by-py)/6
		c2x := bx - (nx-ax)/6
		c2y := by - (ny-ay)/6
		p.CubicCurveTo(c1x, c1y, c2x, c2y, bx, by)
	}
	p.Close()

	return p
}

// rectanglePath builds a plain rounded rectangle, inset by 4% of the width
// with a corner radius of 5%.
func rectanglePath(r Rect) *draw2d.Path {
	in := 0.04 * r.W
	p := &draw2d.Path{}
	appendRoundedRect(p, r.X+in, r.Y+in, r.W-2*in, r.H-2*in, 0.05*r.W)
	return p
}

// framedPhotoPaths builds the polaroid-style frame: the silhouette is the
// full rect with slightly rounded corners, the window is inset with a
// wider margin at the bottom.
func framedPhotoPaths(r Rect) (*draw2d.Path, *draw2d.Path) {
	frame := &draw2d.Path{}
	appendRoundedRect(frame, r.X, r.Y, r.W, r.H, 0.02*r.W)

	m := 0.07 * r.W
	bottom := 0.18 * r.H
	window := &draw2d.Path{}
	appendRect(window, r.X+m, r.Y+m, r.W-2*m, r.H-m-bottom)

	return frame, window
}

// filmstripPaths builds a vertical film strip: a dark frame over the full
// rect with a photo window between two sprocket margins, and a column of
// rectangular sprocket holes punched into each margin at a fixed pitch.
func filmstripPaths(r Rect) (*draw2d.Path, *draw2d.Path) {
	frame := &draw2d.Path{}
	appendRect(frame, r.X, r.Y, r.W, r.H)

	margin := 0.18 * r.W
	vin := 0.04 * r.H
	window := &draw2d.Path{}
	appendRect(window, r.X+margin, r.Y+vin, r.W-2*margin, r.H-2*vin)

	// sprocket holes, both margins, fixed pitch
	hw := 0.07 * r.W
	hh := 0.045 * r.H
	pitch := 0.12 * r.H
	lx := r.X + (margin-hw)/2
	rx := r.X + r.W - (margin+hw)/2
	for cy := r.Y + pitch/2; cy+hh/2 <= r.Y+r.H; cy += pitch {
		appendRect(frame, lx, cy-hh/2, hw, hh)
		appendRect(frame, rx, cy-hh/2, hw, hh)
	}

	return frame, window
}

// appendRect adds a closed axis-aligned rectangle as a new subpath.
func appendRect(p *draw2d.Path, x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// appendRoundedRect adds a closed rounded rectangle as a new subpath.
func appendRoundedRect(p *draw2d.Path, x, y, w, h, r float64) {
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w-r, y+r, r, r, -math.Pi/2, math.Pi/2)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w-r, y+h-r, r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.ArcTo(x+r, y+h-r, r, r, math.Pi/2, math.Pi/2)
	p.LineTo(x, y+r)
	p.ArcTo(x+r, y+r, r, r, math.Pi, math.Pi/2)
	p.Close()
}

// appendCircle adds a closed circle as a new subpath.
func appendCircle(p *draw2d.Path, cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.ArcTo(cx, cy, r, r, 0, 2*math.Pi)
	p.Close()
}
