package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/akeil/snipbook"
	"github.com/akeil/snipbook/internal/imaging"
	"github.com/akeil/snipbook/internal/logging"
)

// pageAspect is the height/width ratio of a composed page (ISO paper).
const pageAspect = math.Sqrt2

// backgrounds maps the book's cosmetic background name to a paper color.
var backgrounds = map[string]color.Color{
	"":      color.White,
	"white": color.White,
	"ivory": color.RGBA{R: 252, G: 248, B: 233, A: 255},
	"gray":  color.RGBA{R: 222, G: 222, B: 224, A: 255},
	"slate": color.RGBA{R: 62, G: 68, B: 76, A: 255},
}

// ComposePage draws all items of one book page into a grid on an opaque
// canvas of the given pixel width. Item images missing in memory are
// loaded from storage.
func ComposePage(s snipbook.Storage, b *snipbook.Book, pageIndex, width int) (*image.RGBA, error) {
	if pageIndex < 0 || pageIndex >= len(b.Pages) {
		return nil, snipbook.NewNotFound("book has no page %v", pageIndex)
	}
	page := b.Pages[pageIndex]
	height := int(math.Round(float64(width) * pageAspect))
	logging.Debug("Compose page %v (%v items) at %vx%v", pageIndex, len(page.Items), width, height)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	bg, ok := backgrounds[b.Background]
	if !ok {
		bg = color.White
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	cols, rows := gridFor(b.Capacity)
	margin := width / 20
	cellW := (width - (cols+1)*margin) / cols
	cellH := (height - (rows+1)*margin) / rows

	for i, item := range page.Items {
		img, err := itemImage(s, item)
		if err != nil {
			return nil, err
		}

		col := i % cols
		row := i / cols
		x := margin + col*(cellW+margin)
		y := margin + row*(cellH+margin)
		cell := image.Rect(x, y, x+cellW, y+cellH)

		// the cut-out must stay complete, so it is fitted, not filled
		place := imaging.AspectFit(img.Bounds(), cell)
		xdraw.BiLinear.Scale(dst, place, img, img.Bounds(), xdraw.Over, nil)
	}

	return dst, nil
}

// RenderPagePNG composes one page and writes it as PNG.
func RenderPagePNG(s snipbook.Storage, b *snipbook.Book, pageIndex, width int, w io.Writer) error {
	img, err := ComposePage(s, b, pageIndex, width)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// gridFor maps a page capacity to its grid dimensions.
func gridFor(capacity int) (cols, rows int) {
	switch capacity {
	case 4:
		return 2, 2
	case 6:
		return 2, 3
	case 9:
		return 3, 3
	}
	cols = int(math.Ceil(math.Sqrt(float64(capacity))))
	rows = (capacity + cols - 1) / cols
	return cols, rows
}

func itemImage(s snipbook.Storage, item *snipbook.Item) (image.Image, error) {
	data := item.Image
	if data == nil {
		var err error
		data, err = s.ReadImage(item.ID)
		if err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, snipbook.Wrap(err, "cannot decode image for item %q", item.ID)
	}
	return img, nil
}
