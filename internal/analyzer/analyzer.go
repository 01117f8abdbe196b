// Package analyzer computes the byte regions of a lowered structure for
// inspection: fixed offsets up to the first list, dynamic after it.
package analyzer

import (
	"fmt"

	"github.com/alexhholmes/wiregen/internal/schema"
	"github.com/alexhholmes/wiregen/internal/structure"
)

// Region represents a span of the wire form
type Region struct {
	Kind     RegionKind
	Name     string      // Member name, or the owning list for a slot
	Type     schema.Type // Field, slot or element type
	Start    int         // Byte offset where region begins (-1 if dynamic)
	Boundary int         // Byte offset where region stops (-1 if dynamic)
}

type RegionKind int

const (
	FixedRegion   RegionKind = iota // Fixed-size field
	PaddingRegion                   // Reserved zero bytes
	SlotRegion                      // Length slot, not kept on the structure
	DynamicRegion                   // List
)

func (k RegionKind) String() string {
	switch k {
	case FixedRegion:
		return "field"
	case PaddingRegion:
		return "pad"
	case SlotRegion:
		return "slot"
	case DynamicRegion:
		return "list"
	default:
		return "unknown"
	}
}

// Layout contains the analyzed regions of one structure
type Layout struct {
	TypeName  string
	FixedSize int  // Bytes before the first list, the whole size when Fixed
	Fixed     bool // No lists
	Regions   []Region
	Warnings  []string
}

// Analyze walks the items of s and places each in a region
func Analyze(s *structure.Structure) *Layout {
	l := &Layout{TypeName: s.Name, Fixed: true}

	offset := 0
	for _, it := range s.Items {
		r := Region{Start: -1, Boundary: -1}

		switch it := it.(type) {
		case schema.Field:
			r.Kind, r.Name, r.Type = FixedRegion, it.Name, it.Type
			r.Start, r.Boundary = place(offset, it.Type.Size)
		case schema.Padding:
			r.Kind = PaddingRegion
			r.Start, r.Boundary = place(offset, it.Bytes)
		case schema.LenSlot:
			r.Kind, r.Name, r.Type = SlotRegion, it.List, it.Type
			r.Start, r.Boundary = place(offset, it.Type.Size)
		case schema.List:
			r.Kind, r.Name, r.Type = DynamicRegion, it.Name, it.Elem
			r.Start = offset
			if offset < 0 {
				r.Start = -1
			}
			l.Fixed = false
		}

		if r.Kind != PaddingRegion && r.Kind != DynamicRegion && r.Start >= 0 && r.Type.IsScalar() {
			if align := r.Type.Size; align > 1 && r.Start%align != 0 {
				l.Warnings = append(l.Warnings,
					fmt.Sprintf("misaligned: %s %s at offset %d", r.Kind, r.Name, r.Start))
			}
		}

		if r.Kind == DynamicRegion || offset < 0 {
			offset = -1
		} else {
			offset = r.Boundary
			l.FixedSize = r.Boundary
		}
		l.Regions = append(l.Regions, r)
	}

	for _, list := range s.ASB.UnusedSlots {
		l.Warnings = append(l.Warnings, fmt.Sprintf("unused length slot for %s", list))
	}

	return l
}

// place returns the span of size bytes at offset, or (-1, -1) once the
// offset is no longer known
func place(offset, size int) (int, int) {
	if offset < 0 {
		return -1, -1
	}
	return offset, offset + size
}

// IsValid returns true if layout has no warnings
func (l *Layout) IsValid() bool {
	return len(l.Warnings) == 0
}

func (r Region) String() string {
	span := "dynamic"
	if r.Start >= 0 && r.Boundary >= 0 {
		span = fmt.Sprintf("[%d, %d)", r.Start, r.Boundary)
	} else if r.Start >= 0 {
		span = fmt.Sprintf("[%d, ...)", r.Start)
	}

	switch r.Kind {
	case PaddingRegion:
		return fmt.Sprintf("%-8s %s", r.Kind, span)
	case DynamicRegion:
		return fmt.Sprintf("%-8s %s []%s %s", r.Kind, r.Name, r.Type, span)
	default:
		return fmt.Sprintf("%-8s %s %s %s", r.Kind, r.Name, r.Type, span)
	}
}
