package shape

import (
	"encoding/json"
	"testing"
)

func TestVariantNames(t *testing.T) {
	for _, v := range Variants() {
		got, err := FromName(v.String())
		if err != nil {
			t.Error(err)
		}
		if got != v {
			t.Errorf("name roundtrip failed for %v", v)
		}
	}

	_, err := FromName("does-not-exist")
	if err == nil {
		t.Errorf("invalid variant name not detected")
	}
}

func TestVariantJSON(t *testing.T) {
	data, err := json.Marshal(Filmstrip)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"filmstrip"` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var v Variant
	err = json.Unmarshal([]byte(`"framed-photo"`), &v)
	if err != nil {
		t.Fatal(err)
	}
	if v != FramedPhoto {
		t.Errorf("unexpected variant: %v", v)
	}

	err = json.Unmarshal([]byte(`"no-such-shape"`), &v)
	if err == nil {
		t.Errorf("invalid variant name not detected")
	}

	_, err = json.Marshal(Variant(100))
	if err == nil {
		t.Errorf("invalid variant value not detected")
	}
}

func TestAspectRatios(t *testing.T) {
	for _, v := range Variants() {
		a := v.AspectRatio()
		if a <= 0 {
			t.Errorf("invalid aspect ratio %v for %v", a, v)
		}
	}

	if Ticket.AspectRatio() >= 1 {
		t.Errorf("a ticket should be wider than tall")
	}
	if Filmstrip.AspectRatio() <= 1 {
		t.Errorf("a filmstrip should be taller than wide")
	}
}

func TestComposite(t *testing.T) {
	for _, v := range Variants() {
		composite := v == FramedPhoto || v == Filmstrip
		if v.Composite() != composite {
			t.Errorf("unexpected composite flag for %v", v)
		}
	}
}
