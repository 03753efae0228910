// Package render turns photos into transparent cut-outs and composes
// pages and books for export.
//
// The compositor is a pure function of its inputs: it holds no shared
// state and concurrent calls with different inputs are safe without
// locking. Masking either completes or fails; there is no partial output.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/ioutil"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	xdraw "golang.org/x/image/draw"

	"github.com/akeil/snipbook"
	"github.com/akeil/snipbook/internal/imaging"
	"github.com/akeil/snipbook/internal/logging"
	"github.com/akeil/snipbook/pkg/shape"
)

// Rotation is the cut-out rotation in degrees, clockwise.
// Only multiples of 90 are supported.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// normalized maps the rotation into 0, 90, 180 or 270,
// accepting negative values and full turns.
func (r Rotation) normalized() (Rotation, bool) {
	n := ((int(r) % 360) + 360) % 360
	if n%90 != 0 {
		return 0, false
	}
	return Rotation(n), true
}

// Mask reads a photo, cuts it to the given shape and returns the result
// as PNG bytes. The output canvas is width pixels wide and
// width * aspect-ratio pixels high; for rotations of 90 and 270 the two
// are swapped so the bytes present the post-rotation bounding box.
//
// Returns a "masking failed" error if the photo cannot be decoded or the
// arguments are out of range. No partial output is ever produced.
func Mask(r io.Reader, v shape.Variant, rot Rotation, width int) ([]byte, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, snipbook.NewMaskingFailed("cannot read source image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, snipbook.NewMaskingFailed("cannot decode source image: %v", err)
	}
	// bake the EXIF orientation into the pixels,
	// drawing ignores orientation metadata
	img = imaging.Normalize(img, imaging.Orientation(data))

	canvas, err := MaskImage(img, v, rot, width)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = png.Encode(&buf, canvas)
	if err != nil {
		return nil, snipbook.NewMaskingFailed("cannot encode result: %v", err)
	}

	return buf.Bytes(), nil
}

// MaskImage cuts an already decoded (and orientation-normalized) photo to
// the given shape and returns the transparent canvas.
func MaskImage(img image.Image, v shape.Variant, rot Rotation, width int) (*image.RGBA, error) {
	if width <= 0 {
		return nil, snipbook.NewMaskingFailed("invalid output width %v", width)
	}
	norm, ok := rot.normalized()
	if !ok {
		return nil, snipbook.NewMaskingFailed("rotation must be a multiple of 90, got %v", int(rot))
	}
	rot = norm

	height := int(math.Round(float64(width) * v.AspectRatio()))
	if height <= 0 {
		return nil, snipbook.NewMaskingFailed("degenerate canvas %vx%v", width, height)
	}
	logging.Debug("Mask %vx%v as %q, rotated by %v", width, height, v, int(rot))

	o := shape.OutlineFor(v, shape.Rect{W: float64(width), H: float64(height)})
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	silhouette := rasterize(o.Path, width, height)
	clip := silhouette
	target := dst.Bounds()

	if o.Window != nil {
		// paint the solid frame first, then confine the photo to the window
		frame := image.NewUniform(o.Frame)
		draw.DrawMask(dst, dst.Bounds(), frame, image.Point{}, silhouette, image.Point{}, draw.Over)
		clip = rasterize(o.Window, width, height)
		target = boundsToRect(shape.PathBounds(o.Window))
	}

	// aspect-fill: scale uniformly, center the overflow, never stretch
	placement := imaging.AspectFill(img.Bounds(), target)
	opts := xdraw.Options{DstMask: clip, DstMaskP: image.Point{}}
	xdraw.BiLinear.Scale(dst, placement, img, img.Bounds(), xdraw.Over, &opts)

	switch rot {
	case Rotate90:
		return imaging.Rotate90(dst), nil
	case Rotate180:
		return imaging.Rotate180(dst), nil
	case Rotate270:
		return imaging.Rotate270(dst), nil
	default:
		return dst, nil
	}
}

// rasterize fills the path into an alpha mask of the given size.
// Cutout subpaths are punched out by the even-odd rule.
func rasterize(p *draw2d.Path, w, h int) *image.RGBA {
	mask := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(mask)
	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	gc.SetFillColor(color.White)
	gc.Fill(p)
	return mask
}

func boundsToRect(r shape.Rect) image.Rectangle {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.W))
	y1 := int(math.Ceil(r.Y + r.H))
	return image.Rect(x0, y0, x1, y1)
}
