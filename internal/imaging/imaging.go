// Package imaging holds pixel-level helpers for the compositor:
// exact quarter-turn rotations, flips, EXIF orientation handling and
// aspect-fill placement.
package imaging

import (
	"image"
)

// Rotate90 returns a copy of the image rotated clockwise by 90 degrees.
func Rotate90(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+y, b.Min.Y+h-1-x))
		}
	}
	return dst
}

// Rotate180 returns a copy of the image rotated by 180 degrees.
func Rotate180(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, src.At(b.Min.X+w-1-x, b.Min.Y+h-1-y))
		}
	}
	return dst
}

// Rotate270 returns a copy of the image rotated clockwise by 270 degrees.
func Rotate270(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+w-1-y, b.Min.Y+x))
		}
	}
	return dst
}

// FlipH returns a copy of the image mirrored along the vertical axis.
func FlipH(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, src.At(b.Min.X+w-1-x, b.Min.Y+y))
		}
	}
	return dst
}

// FlipV returns a copy of the image mirrored along the horizontal axis.
func FlipV(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+h-1-y))
		}
	}
	return dst
}

// transpose mirrors the image along its top-left to bottom-right diagonal.
func transpose(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+y, b.Min.Y+x))
		}
	}
	return dst
}

// transverse mirrors the image along its bottom-left to top-right diagonal.
func transverse(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+w-1-y, b.Min.Y+h-1-x))
		}
	}
	return dst
}

// Normalize bakes an EXIF orientation value (1..8) into the pixel data so
// that downstream drawing can ignore orientation metadata.
func Normalize(src image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return FlipH(src)
	case 3:
		return Rotate180(src)
	case 4:
		return FlipV(src)
	case 5:
		return transpose(src)
	case 6:
		return Rotate90(src)
	case 7:
		return transverse(src)
	case 8:
		return Rotate270(src)
	default:
		return src
	}
}

// AspectFit computes the placement rectangle for drawing src into target
// so that it is completely visible: uniform scale, the longer fitted
// dimension matches the target and the result is centered.
func AspectFit(src, target image.Rectangle) image.Rectangle {
	sw := float64(src.Dx())
	sh := float64(src.Dy())
	tw := float64(target.Dx())
	th := float64(target.Dy())
	if sw <= 0 || sh <= 0 {
		return target
	}

	scale := tw / sw
	if th/sh < scale {
		scale = th / sh
	}

	w := int(sw*scale + 0.5)
	h := int(sh*scale + 0.5)
	x := target.Min.X + (target.Dx()-w)/2
	y := target.Min.Y + (target.Dy()-h)/2

	return image.Rect(x, y, x+w, y+h)
}

// AspectFill computes the placement rectangle for drawing src into target
// so that the target is completely covered: uniform scale, the shorter
// fitted dimension matches the target exactly and the overflow on the
// other dimension is centered. The source aspect ratio is preserved.
func AspectFill(src, target image.Rectangle) image.Rectangle {
	sw := float64(src.Dx())
	sh := float64(src.Dy())
	tw := float64(target.Dx())
	th := float64(target.Dy())
	if sw <= 0 || sh <= 0 {
		return target
	}

	scale := tw / sw
	if th/sh > scale {
		scale = th / sh
	}

	w := int(sw*scale + 0.5)
	h := int(sh*scale + 0.5)
	x := target.Min.X - (w-target.Dx())/2
	y := target.Min.Y - (h-target.Dy())/2

	return image.Rect(x, y, x+w, y+h)
}
