package imaging

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// quad builds a 2x2 image with distinct corner colors:
//
//	red   green
//	blue  white
func quad() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, red)
	img.Set(1, 0, green)
	img.Set(0, 1, blue)
	img.Set(1, 1, white)
	return img
}

func expectPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	if got != want {
		t.Errorf("unexpected pixel at %v,%v: %v != %v", x, y, got, want)
	}
}

func TestRotate90(t *testing.T) {
	got := Rotate90(quad())
	// top-left moves to top-right
	expectPixel(t, got, 1, 0, red)
	expectPixel(t, got, 1, 1, green)
	expectPixel(t, got, 0, 0, blue)
	expectPixel(t, got, 0, 1, white)
}

func TestRotate180(t *testing.T) {
	got := Rotate180(quad())
	expectPixel(t, got, 1, 1, red)
	expectPixel(t, got, 0, 1, green)
	expectPixel(t, got, 1, 0, blue)
	expectPixel(t, got, 0, 0, white)
}

func TestRotate270(t *testing.T) {
	got := Rotate270(quad())
	expectPixel(t, got, 0, 1, red)
	expectPixel(t, got, 0, 0, green)
	expectPixel(t, got, 1, 1, blue)
	expectPixel(t, got, 1, 0, white)
}

func TestRotationsCompose(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 40), A: 255})
		}
	}

	got := Rotate270(Rotate90(src))
	if got.Bounds() != src.Bounds() {
		t.Fatalf("unexpected bounds %v", got.Bounds())
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("rotations do not compose to identity at byte %v", i)
		}
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 3))
	got := Rotate90(src)
	if got.Bounds().Dx() != 3 || got.Bounds().Dy() != 7 {
		t.Errorf("unexpected bounds %v", got.Bounds())
	}
}

func TestFlip(t *testing.T) {
	got := FlipH(quad())
	expectPixel(t, got, 0, 0, green)
	expectPixel(t, got, 1, 0, red)

	got = FlipV(quad())
	expectPixel(t, got, 0, 0, blue)
	expectPixel(t, got, 0, 1, red)
}

func TestNormalize(t *testing.T) {
	src := quad()

	// orientation 1 and out-of-range values are a no-op
	if Normalize(src, 1) != image.Image(src) {
		t.Errorf("orientation 1 should not copy")
	}
	if Normalize(src, 0) != image.Image(src) {
		t.Errorf("orientation 0 should not copy")
	}
	if Normalize(src, 9) != image.Image(src) {
		t.Errorf("orientation 9 should not copy")
	}

	// orientation 6: camera rotated, rotate pixels 90° clockwise
	got := Normalize(src, 6)
	expectPixel(t, got, 1, 0, red)

	// orientation 3: upside down
	got = Normalize(src, 3)
	expectPixel(t, got, 1, 1, red)

	// orientation 5: transpose
	got = Normalize(src, 5)
	expectPixel(t, got, 0, 0, red)
	expectPixel(t, got, 0, 1, green)
}

func TestAspectFill(t *testing.T) {
	// square photo into a taller-than-wide target: the height is matched
	// and the horizontal overflow is centered, nothing is letterboxed
	src := image.Rect(0, 0, 200, 200)
	target := image.Rect(0, 0, 100, 120)

	got := AspectFill(src, target)
	if got.Dx() != 120 || got.Dy() != 120 {
		t.Errorf("unexpected placement size %vx%v", got.Dx(), got.Dy())
	}
	if got.Min.X != -10 || got.Min.Y != 0 {
		t.Errorf("placement not centered: %v", got.Min)
	}
	if !target.In(got) {
		t.Errorf("placement %v does not cover target %v", got, target)
	}
}

func TestAspectFillWide(t *testing.T) {
	// wide photo into a square target: width overflows, height matches
	src := image.Rect(0, 0, 400, 200)
	target := image.Rect(10, 10, 110, 110)

	got := AspectFill(src, target)
	if got.Dy() != 100 || got.Dx() != 200 {
		t.Errorf("unexpected placement size %vx%v", got.Dx(), got.Dy())
	}
	if got.Min.Y != 10 {
		t.Errorf("placement not aligned: %v", got.Min)
	}
	if !target.In(got) {
		t.Errorf("placement %v does not cover target %v", got, target)
	}
}

func TestAspectFit(t *testing.T) {
	src := image.Rect(0, 0, 400, 200)
	target := image.Rect(0, 0, 100, 100)

	got := AspectFit(src, target)
	if got.Dx() != 100 || got.Dy() != 50 {
		t.Errorf("unexpected placement size %vx%v", got.Dx(), got.Dy())
	}
	if !got.In(target) {
		t.Errorf("placement %v exceeds target %v", got, target)
	}
	if got.Min.Y != 25 {
		t.Errorf("placement not centered: %v", got.Min)
	}
}
