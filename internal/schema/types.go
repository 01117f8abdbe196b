package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a type name cannot be resolved
var ErrUnknownType = errors.New("unknown type")

// Type is a resolved wire type
type Type struct {
	Name       string // Go type name used in generated code
	Underlying string // Primitive type for scalars and aliases, empty for structures
	Size       int    // Wire size in bytes
}

// IsScalar reports whether the type is encoded directly with encoding/binary
func (t Type) IsScalar() bool {
	return t.Underlying != ""
}

// IsInteger reports whether the type can hold an element count
func (t Type) IsInteger() bool {
	switch t.Underlying {
	case "uint8", "int8", "byte", "uint16", "int16", "uint32", "int32", "uint64", "int64":
		return true
	}
	return false
}

func (t Type) String() string {
	if t.Underlying != "" && t.Underlying != t.Name {
		return fmt.Sprintf("%s(%s)", t.Name, t.Underlying)
	}
	return t.Name
}

// primitiveSize returns the wire size of a Go primitive
func primitiveSize(name string) (int, bool) {
	switch name {
	case "uint8", "int8", "byte", "bool":
		return 1, true
	case "uint16", "int16":
		return 2, true
	case "uint32", "int32", "float32":
		return 4, true
	case "uint64", "int64", "float64":
		return 8, true
	}
	return 0, false
}

// Primitive returns the Type for a Go primitive, panicking on anything else.
// Intended for tests and static tables.
func Primitive(name string) Type {
	size, ok := primitiveSize(name)
	if !ok {
		panic("schema: not a primitive: " + name)
	}
	return Type{Name: name, Underlying: name, Size: size}
}

// TypeRegistry tracks structure sizes and type aliases for type resolution
type TypeRegistry struct {
	types   map[string]int    // structure name → wire size in bytes
	aliases map[string]string // alias → underlying type
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make(map[string]int),
		aliases: make(map[string]string),
	}
}

// Register adds a fixed-size structure type
func (r *TypeRegistry) Register(name string, size int) {
	r.types[name] = size
}

// RegisterAlias adds a type alias mapping (e.g., Window → uint32)
func (r *TypeRegistry) RegisterAlias(alias, underlying string) {
	r.aliases[alias] = underlying
}

// Lookup returns the size of a registered structure
func (r *TypeRegistry) Lookup(name string) (int, bool) {
	size, ok := r.types[name]
	return size, ok
}

// ResolveAlias follows alias chains to the final type name.
// Returns the original name if it is not an alias.
func (r *TypeRegistry) ResolveAlias(name string) string {
	seen := make(map[string]bool)
	for {
		underlying, ok := r.aliases[name]
		if !ok || seen[name] {
			return name
		}
		seen[name] = true
		name = underlying
	}
}

// Resolve turns a textual type name into a Type
func (r *TypeRegistry) Resolve(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Type{}, fmt.Errorf("%w: empty type name", ErrUnknownType)
	}
	if strings.HasPrefix(name, "*") || strings.HasPrefix(name, "[") {
		return Type{}, fmt.Errorf("%w: %s (only scalars and registered structures are allowed)", ErrUnknownType, name)
	}

	resolved := r.ResolveAlias(name)

	if size, ok := primitiveSize(resolved); ok {
		return Type{Name: name, Underlying: resolved, Size: size}, nil
	}

	if size, ok := r.Lookup(resolved); ok {
		// Structure aliases name the structure itself so generated code can
		// call its decoder
		return Type{Name: resolved, Size: size}, nil
	}

	return Type{}, fmt.Errorf("%w: %s (not registered)", ErrUnknownType, name)
}
