package shape

import (
	"testing"

	"github.com/llgcode/draw2d"
)

// rects with different sizes and a non-zero origin
var testRects = []Rect{
	{X: 0, Y: 0, W: 100, H: 120},
	{X: 0, Y: 0, W: 640, H: 480},
	{X: 50, Y: 80, W: 333, H: 333},
}

func TestOutlinesClosed(t *testing.T) {
	for _, v := range Variants() {
		for _, r := range testRects {
			o := OutlineFor(v, r)
			assertClosed(t, v, o.Path)
			if v.Composite() {
				if o.Window == nil {
					t.Errorf("%v: composite variant has no window", v)
					continue
				}
				assertClosed(t, v, o.Window)
				if o.Frame == nil {
					t.Errorf("%v: composite variant has no frame color", v)
				}
			} else if o.Window != nil {
				t.Errorf("%v: simple variant has a window", v)
			}
		}
	}
}

// assertClosed checks that the path consists of closed subpaths only:
// it starts with a move, every subpath ends on a close and there are no
// trailing segments after the last close.
func assertClosed(t *testing.T, v Variant, p *draw2d.Path) {
	t.Helper()
	if p == nil || p.IsEmpty() {
		t.Errorf("%v: empty outline", v)
		return
	}

	if p.Components[0] != draw2d.MoveToCmp {
		t.Errorf("%v: outline does not start with a move", v)
	}
	if p.Components[len(p.Components)-1] != draw2d.CloseCmp {
		t.Errorf("%v: outline does not end closed", v)
	}
	for i, cmp := range p.Components {
		if cmp == draw2d.MoveToCmp && i > 0 {
			if p.Components[i-1] != draw2d.CloseCmp {
				t.Errorf("%v: subpath %v starts before the previous one is closed", v, i)
			}
		}
	}
}

func TestOutlinesWithinRect(t *testing.T) {
	for _, v := range Variants() {
		for _, r := range testRects {
			o := OutlineFor(v, r)

			// notches and organic curves may poke slightly outside
			tol := 0.08 * r.W
			if r.H > r.W {
				tol = 0.08 * r.H
			}

			b := PathBounds(o.Path)
			if b.X < r.X-tol || b.Y < r.Y-tol ||
				b.X+b.W > r.X+r.W+tol || b.Y+b.H > r.Y+r.H+tol {
				t.Errorf("%v: outline %+v exceeds rect %+v", v, b, r)
			}
			if b.W <= 0 || b.H <= 0 {
				t.Errorf("%v: degenerate outline bounds %+v", v, b)
			}

			if o.Window != nil {
				wb := PathBounds(o.Window)
				if wb.X < b.X || wb.Y < b.Y ||
					wb.X+wb.W > b.X+b.W+tol || wb.Y+wb.H > b.Y+b.H+tol {
					t.Errorf("%v: window %+v exceeds frame %+v", v, wb, b)
				}
			}
		}
	}
}

// TestOutlineDeterministic asserts that the same variant and rect always
// produce the identical path; there must be no runtime randomness.
func TestOutlineDeterministic(t *testing.T) {
	r := Rect{W: 480, H: 520}
	for _, v := range Variants() {
		one := OutlineFor(v, r)
		other := OutlineFor(v, r)

		if len(one.Path.Components) != len(other.Path.Components) {
			t.Errorf("%v: component count differs between calls", v)
			continue
		}
		if len(one.Path.Points) != len(other.Path.Points) {
			t.Errorf("%v: point count differs between calls", v)
			continue
		}
		for i := range one.Path.Points {
			if one.Path.Points[i] != other.Path.Points[i] {
				t.Errorf("%v: point %v differs between calls", v, i)
				break
			}
		}
	}
}

func TestOutlineScalesWithRect(t *testing.T) {
	small := OutlineFor(Stamp, Rect{W: 100, H: 120})
	large := OutlineFor(Stamp, Rect{W: 1000, H: 1200})

	// same construction at any resolution: proportions are relative
	if len(small.Path.Components) != len(large.Path.Components) {
		t.Errorf("scallop layout changed with resolution")
	}

	sb := PathBounds(small.Path)
	lb := PathBounds(large.Path)
	almost := func(a, b float64) bool {
		d := a - b
		return d < 0.001 && d > -0.001
	}
	if !almost(lb.X, sb.X*10) || !almost(lb.Y, sb.Y*10) ||
		!almost(lb.W, sb.W*10) || !almost(lb.H, sb.H*10) {
		t.Errorf("outline did not scale linearly: %+v vs %+v", sb, lb)
	}
}

func TestFilmstripSprockets(t *testing.T) {
	o := OutlineFor(Filmstrip, Rect{W: 400, H: 580})

	// frame rect is one subpath, every sprocket hole adds another
	closes := 0
	for _, cmp := range o.Path.Components {
		if cmp == draw2d.CloseCmp {
			closes++
		}
	}
	if closes < 5 {
		t.Errorf("expected sprocket cutouts, got %v subpaths", closes)
	}
}
