package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemTag is a parsed wire struct tag
type ItemTag struct {
	Pad    int    // Padding bytes; trailing padding when on a slice
	LenFor string // List whose length slot this blank field is
	Length string // Length of a slice field (empty means slot)
}

// ParseTag parses wire struct tags
//
// Semantics:
//   - "pad=N"        : on a blank field, N reserved zero bytes;
//     on a slice, N zero bytes after the elements
//   - "len=List"     : blank field holding the element count of List
//   - "length=slot"  : slice length comes from its len= slot (default)
//   - "length=remaining" : slice fills the rest of the input
//   - "length=N" or "length=expr" : constant or expression over fields
//
// Examples:
//
//	`wire:"pad=2"`                → 2 padding bytes
//	`wire:"len=Names"`            → length slot of Names
//	`wire:"length=Width*Height"`  → list length from two earlier fields
//	`wire:"length=slot,pad=2"`    → slot length with 2 trailing bytes
func ParseTag(tag string) (*ItemTag, error) {
	if tag == "" {
		return nil, fmt.Errorf("empty wire tag")
	}

	t := &ItemTag{}
	for _, part := range strings.Split(tag, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[1] == "" {
			return nil, fmt.Errorf("invalid wire tag parameter: %q", part)
		}

		key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "pad":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid pad: %s", value)
			}
			if n <= 0 {
				return nil, fmt.Errorf("pad must be positive, got: %d", n)
			}
			t.Pad = n

		case "len":
			t.LenFor = value

		case "length":
			t.Length = value

		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	if t.LenFor != "" && (t.Pad != 0 || t.Length != "") {
		return nil, fmt.Errorf("len= cannot be combined with other parameters")
	}

	return t, nil
}
