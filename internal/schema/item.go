package schema

// Item is one element of a message's wire layout.
// The set of implementations is closed: Field, Padding, LenSlot and List.
type Item interface {
	item()
}

// Field is a fixed-size member retained on the generated structure
type Field struct {
	Name string
	Type Type
}

// Padding is a run of reserved bytes. Written as zero, skipped on read.
type Padding struct {
	Bytes int
}

// LenSlot carries the element count of the list named List.
// It exists only on the wire and never becomes a structure field.
type LenSlot struct {
	Type Type
	List string
}

// List is a variable-length sequence member
type List struct {
	Name   string
	Elem   Type
	Length Length
	Pad    int // Trailing alignment bytes after the elements
}

func (Field) item()   {}
func (Padding) item() {}
func (LenSlot) item() {}
func (List) item()    {}

// ItemName returns the member name of a retained item, or "" for padding
// and length slots.
func ItemName(it Item) string {
	switch it := it.(type) {
	case Field:
		return it.Name
	case List:
		return it.Name
	}
	return ""
}

// Retained reports whether the item becomes a field of the generated structure
func Retained(it Item) bool {
	switch it.(type) {
	case Field, List:
		return true
	}
	return false
}
