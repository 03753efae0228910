package snipbook

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/akeil/snipbook/internal/logging"
)

const (
	bookFile  = "book.json"
	imagesDir = "images"
)

type fsStorage struct {
	Base string
}

// NewFilesystemStorage creates a storage rooted at the given directory.
// The book is kept as a JSON file, item images as one PNG file each.
func NewFilesystemStorage(base string) Storage {
	return &fsStorage{base}
}

func (f *fsStorage) ReadBook() (*Book, error) {
	path := filepath.Join(f.Base, bookFile)
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, NewNotFound("no book at %q", path)
	} else if err != nil {
		return nil, err
	}

	var b Book
	err = json.Unmarshal(data, &b)
	if err != nil {
		return nil, Wrap(err, "cannot read book from %q", path)
	}
	if b.Capacity < 1 {
		return nil, NewValidationError("book at %q has invalid capacity %v", path, b.Capacity)
	}

	return &b, nil
}

func (f *fsStorage) WriteBook(b *Book) error {
	err := os.MkdirAll(filepath.Join(f.Base, imagesDir), 0755)
	if err != nil {
		return err
	}

	// persist in-memory images first so a re-read finds them
	for _, p := range b.Pages {
		for _, item := range p.Items {
			if item.Image == nil {
				continue
			}
			err = f.WriteImage(item.ID, item.Image)
			if err != nil {
				return err
			}
		}
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(f.Base, bookFile)
	logging.Debug("Write book with %v pages to %q", len(b.Pages), path)
	return ioutil.WriteFile(path, data, 0644)
}

func (f *fsStorage) ReadImage(itemID string) ([]byte, error) {
	data, err := ioutil.ReadFile(f.imagePath(itemID))
	if os.IsNotExist(err) {
		return nil, NewNotFound("no image for item %q", itemID)
	}
	return data, err
}

func (f *fsStorage) WriteImage(itemID string, data []byte) error {
	return ioutil.WriteFile(f.imagePath(itemID), data, 0644)
}

func (f *fsStorage) RemoveImage(itemID string) error {
	err := os.Remove(f.imagePath(itemID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *fsStorage) imagePath(itemID string) string {
	return filepath.Join(f.Base, imagesDir, itemID+".png")
}
