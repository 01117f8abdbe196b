package codegen

// DeclKind classifies a declaration inside a Unit
type DeclKind int

const (
	TypeDecl      DeclKind = iota // Struct type declaration
	MethodsBlock                  // Inherent methods
	SerializeImpl                 // WireSize, AsBytes and FromBytes
	TraitImpl                     // Event, Error or Request obligations
)

func (k DeclKind) String() string {
	switch k {
	case TypeDecl:
		return "type"
	case MethodsBlock:
		return "methods"
	case SerializeImpl:
		return "serialize"
	case TraitImpl:
		return "trait"
	default:
		return "unknown"
	}
}

// Decl is one rendered declaration group
type Decl struct {
	Kind   DeclKind
	Name   string
	Source string
}

// Unit is everything emitted for one generated structure
type Unit struct {
	Name    string
	Decls   []Decl
	Imports []string // Sorted import paths used by Decls
}

// Source concatenates the declarations of the unit
func (u Unit) Source() string {
	var out []byte
	for _, d := range u.Decls {
		if d.Source == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, d.Source...)
	}
	return string(out)
}
