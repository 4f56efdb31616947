package knobs

import "strconv"

// ElementID is a stable handle to an element in a Gui. IDs are issued only
// by Gui.Add and are never reused. The zero value refers to no element.
type ElementID struct {
	n int // index + 1
}

func idAt(index int) ElementID {
	return ElementID{n: index + 1}
}

func (id ElementID) index() int {
	return id.n - 1
}

// IsValid reports whether id refers to an element.
func (id ElementID) IsValid() bool {
	return id.n > 0
}

// String returns a debug representation such as "#3".
func (id ElementID) String() string {
	if !id.IsValid() {
		return "#none"
	}
	return "#" + strconv.Itoa(id.index())
}

// FontID identifies a font loaded into Assets.
type FontID struct {
	n int
}

// IsValid reports whether id refers to a font.
func (id FontID) IsValid() bool { return id.n > 0 }

// ImageID identifies an image loaded into Assets.
type ImageID struct {
	n int
}

// IsValid reports whether id refers to an image.
func (id ImageID) IsValid() bool { return id.n > 0 }
