// Package shape defines the catalog of cut-out silhouettes and constructs
// their vector outlines.
//
// A Variant names one silhouette from a closed set. Every variant has an
// intrinsic aspect ratio (height/width) and a parametric construction rule
// that scales a closed outline into any target rectangle. Outlines are
// derived values and are recomputed on every call; all proportions are
// fractions of the rectangle's width (or height where noted), so the same
// shape renders with identical relative proportions at preview and export
// resolution.
package shape

import (
	"encoding/json"
	"fmt"
)

// Variant identifies one of the available cut-out shapes.
type Variant int

const (
	Stamp Variant = iota
	Circle
	Ticket
	Label
	Torn
	Rectangle
	FramedPhoto
	Filmstrip
)

var names = map[Variant]string{
	Stamp:       "stamp",
	Circle:      "circle",
	Ticket:      "ticket",
	Label:       "label",
	Torn:        "torn",
	Rectangle:   "rectangle",
	FramedPhoto: "framed-photo",
	Filmstrip:   "filmstrip",
}

// aspects holds the intrinsic height/width ratio per variant.
// Callers use it to size the bounding rect before requesting an outline.
var aspects = map[Variant]float64{
	Stamp:       1.2,
	Circle:      1.0,
	Ticket:      0.55,
	Label:       0.5,
	Torn:        1.1,
	Rectangle:   1.0,
	FramedPhoto: 1.25,
	Filmstrip:   1.45,
}

// Variants lists all defined shape variants in a stable order.
func Variants() []Variant {
	return []Variant{
		Stamp, Circle, Ticket, Label, Torn, Rectangle, FramedPhoto, Filmstrip,
	}
}

// FromName resolves a variant by its name.
func FromName(name string) (Variant, error) {
	for v, n := range names {
		if n == name {
			return v, nil
		}
	}
	return Variant(0), fmt.Errorf("invalid shape variant %q", name)
}

func (v Variant) String() string {
	n, ok := names[v]
	if !ok {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return n
}

// AspectRatio is the intrinsic height/width ratio for this variant.
func (v Variant) AspectRatio() float64 {
	a, ok := aspects[v]
	if !ok {
		return 1.0
	}
	return a
}

// Composite tells if this variant draws a solid frame behind the photo
// window instead of clipping the photo to the silhouette itself.
func (v Variant) Composite() bool {
	return v == FramedPhoto || v == Filmstrip
}

func (v Variant) MarshalJSON() ([]byte, error) {
	n, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("invalid shape variant %v", int(v))
	}
	return json.Marshal(n)
}

func (v *Variant) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	parsed, err := FromName(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
