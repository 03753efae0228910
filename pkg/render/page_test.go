package render

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/akeil/snipbook"
	"github.com/akeil/snipbook/pkg/shape"
)

// memStorage serves item images from memory.
type memStorage struct {
	images map[string][]byte
}

func (m *memStorage) ReadBook() (*snipbook.Book, error) {
	return nil, fmt.Errorf("not supported")
}

func (m *memStorage) WriteBook(b *snipbook.Book) error {
	return fmt.Errorf("not supported")
}

func (m *memStorage) ReadImage(itemID string) ([]byte, error) {
	data, ok := m.images[itemID]
	if !ok {
		return nil, snipbook.NewNotFound("no image for item %q", itemID)
	}
	return data, nil
}

func (m *memStorage) WriteImage(itemID string, data []byte) error {
	m.images[itemID] = data
	return nil
}

func (m *memStorage) RemoveImage(itemID string) error {
	delete(m.images, itemID)
	return nil
}

func testBook(t *testing.T, n int) (*snipbook.Book, *memStorage) {
	t.Helper()
	s := &memStorage{images: make(map[string][]byte)}
	b := snipbook.NewBook("Test", 4)

	data := testPhotoPNG(120, 90)
	for i := 0; i < n; i++ {
		snip, err := Mask(bytes.NewReader(data), shape.Circle, Rotate0, 80)
		if err != nil {
			t.Fatal(err)
		}
		item := snipbook.NewItem(shape.Circle, nil)
		b.Append(item)
		err = s.WriteImage(item.ID, snip)
		if err != nil {
			t.Fatal(err)
		}
	}
	return b, s
}

func TestComposePage(t *testing.T) {
	b, s := testBook(t, 5)

	width := 400
	img, err := ComposePage(s, b, 0, width)
	if err != nil {
		t.Fatal(err)
	}

	wantH := int(math.Round(float64(width) * pageAspect))
	if img.Bounds().Dx() != width || img.Bounds().Dy() != wantH {
		t.Errorf("unexpected page size %v", img.Bounds())
	}

	// the page background is opaque paper
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0xFFFF {
		t.Errorf("page background is not opaque")
	}

	// the second book page holds the remaining item
	_, err = ComposePage(s, b, 1, width)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ComposePage(s, b, 2, width)
	if !snipbook.IsNotFound(err) {
		t.Errorf("expected a not found error, got %v", err)
	}
}

func TestComposePageMissingImage(t *testing.T) {
	b, _ := testBook(t, 1)
	empty := &memStorage{images: make(map[string][]byte)}

	_, err := ComposePage(empty, b, 0, 200)
	if !snipbook.IsNotFound(err) {
		t.Errorf("expected a not found error, got %v", err)
	}
}

func TestGridFor(t *testing.T) {
	cases := []struct {
		capacity, cols, rows int
	}{
		{4, 2, 2},
		{6, 2, 3},
		{9, 3, 3},
		{2, 2, 1},
		{12, 4, 3},
	}
	for _, c := range cases {
		cols, rows := gridFor(c.capacity)
		if cols != c.cols || rows != c.rows {
			t.Errorf("unexpected grid for capacity %v: %vx%v", c.capacity, cols, rows)
		}
		if cols*rows < c.capacity {
			t.Errorf("grid for capacity %v does not hold all items", c.capacity)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	b, s := testBook(t, 5)

	var buf bytes.Buffer
	err := RenderPDF(s, b, &buf)
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF")
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %v bytes", len(data))
	}
}
