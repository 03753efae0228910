package snipbook

// Storage reads and writes a book and the image payloads of its items.
// Implementations are expected to keep item images addressable by item ID
// so the book JSON stays small.
type Storage interface {
	// ReadBook loads the book. Returns a "not found" error if no book
	// has been written yet.
	ReadBook() (*Book, error)
	// WriteBook persists the book and any in-memory item images.
	WriteBook(b *Book) error
	// ReadImage loads the image payload of one item.
	ReadImage(itemID string) ([]byte, error)
	// WriteImage persists the image payload of one item.
	WriteImage(itemID string, data []byte) error
	// RemoveImage deletes the image payload of one item.
	RemoveImage(itemID string) error
}

// LoadImages fills in the image payload for every item of the book that
// does not have it in memory yet.
func LoadImages(s Storage, b *Book) error {
	for _, p := range b.Pages {
		for _, item := range p.Items {
			if item.Image != nil {
				continue
			}
			data, err := s.ReadImage(item.ID)
			if err != nil {
				return Wrap(err, "cannot load image for item %q", item.ID)
			}
			item.Image = data
		}
	}
	return nil
}
