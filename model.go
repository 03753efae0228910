package snipbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/akeil/snipbook/pkg/shape"
)

// Item is one cut-out: a transparent raster image produced by the
// compositor, plus its metadata. An item belongs to exactly one page.
//
// The image payload is not part of the JSON representation; it is stored
// separately under the item's ID (see Storage).
type Item struct {
	ID        string        `json:"id"`
	Shape     shape.Variant `json:"shape"`
	CreatedAt time.Time     `json:"createdAt"`
	// Index is the position within the owning page.
	Index int `json:"index"`
	// Label is an optional free-text caption.
	Label string `json:"label,omitempty"`
	// Place is an optional place name, with optional coordinates.
	Place     string   `json:"place,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Image is the transparent PNG payload. May be nil if the item was
	// read from storage without its image.
	Image []byte `json:"-"`
}

// NewItem wraps a masked image into an item record with a fresh ID.
func NewItem(v shape.Variant, img []byte) *Item {
	return &Item{
		ID:        uuid.New().String(),
		Shape:     v,
		CreatedAt: time.Now().UTC(),
		Image:     img,
	}
}

func (i *Item) Validate() error {
	if i.ID == "" {
		return NewValidationError("item has no ID")
	}
	if i.Index < 0 {
		return NewValidationError("item %q has negative index %v", i.ID, i.Index)
	}
	if (i.Latitude == nil) != (i.Longitude == nil) {
		return NewValidationError("item %q has incomplete coordinates", i.ID)
	}
	return nil
}
