package codegen

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alexhholmes/wiregen/internal/schema"
	"github.com/alexhholmes/wiregen/internal/structure"
)

// DefaultRuntime is the import path of the package generated code depends on
const DefaultRuntime = "github.com/alexhholmes/wiregen/wire"

// Generator renders lowered structures into Go declarations
type Generator struct {
	endian  string // "little" or "big"
	runtime string // import path of the wire runtime

	imports map[string]bool // Imports used by the unit being emitted
}

// NewGenerator creates a new code generator
func NewGenerator(endian, runtime string) *Generator {
	if endian == "" {
		endian = "little"
	}
	if runtime == "" {
		runtime = DefaultRuntime
	}
	return &Generator{
		endian:  endian,
		runtime: runtime,
	}
}

// Emit renders s into a Unit. Emit does not modify g and is safe for
// concurrent use.
func (g *Generator) Emit(s *structure.Structure) Unit {
	e := *g
	e.imports = make(map[string]bool)

	u := Unit{Name: s.Name}
	u.Decls = append(u.Decls,
		Decl{Kind: TypeDecl, Name: s.Name, Source: e.generateType(s)},
		Decl{Kind: MethodsBlock, Name: s.Name, Source: e.generateMethods(s)},
		Decl{Kind: SerializeImpl, Name: s.Name, Source: e.generateSerialize(s)},
	)
	for _, t := range s.Traits {
		u.Decls = append(u.Decls, Decl{Kind: TraitImpl, Name: s.Name, Source: e.generateTrait(s, t)})
	}

	for imp := range e.imports {
		u.Imports = append(u.Imports, imp)
	}
	sort.Strings(u.Imports)
	return u
}

func (g *Generator) use(importPath string) {
	g.imports[importPath] = true
}

func (g *Generator) useRuntime() {
	g.use(g.runtime)
}

// runtimeName returns the package name of the runtime import
func (g *Generator) runtimeName() string {
	return path.Base(g.runtime)
}

// endianPrefix returns "binary.LittleEndian" or "binary.BigEndian"
func (g *Generator) endianPrefix() string {
	if g.endian == "big" {
		return "binary.BigEndian"
	}
	return "binary.LittleEndian"
}

// goType returns the Go type of a retained item
func goType(it schema.Item) string {
	switch it := it.(type) {
	case schema.Field:
		return it.Type.Name
	case schema.List:
		return "[]" + it.Elem.Name
	}
	return ""
}

// generateType generates the struct declaration
func (g *Generator) generateType(s *structure.Structure) string {
	var code strings.Builder

	brief := strings.TrimSpace(s.Brief)
	if brief == "" {
		brief = "is a generated wire structure."
	}
	code.WriteString(fmt.Sprintf("// %s %s\n", s.Name, brief))
	if desc := strings.TrimSpace(s.Desc); desc != "" {
		code.WriteString("//\n")
		for _, line := range strings.Split(desc, "\n") {
			code.WriteString(strings.TrimRight("// "+strings.TrimSpace(line), " ") + "\n")
		}
	}
	if s.Transparent {
		code.WriteString("//\n//wiregen:transparent\n")
	}
	if len(s.Derives) > 0 {
		names := make([]string, len(s.Derives))
		for i, d := range s.Derives {
			names[i] = string(d)
		}
		if !s.Transparent {
			code.WriteString("//\n")
		}
		code.WriteString(fmt.Sprintf("//wiregen:derive %s\n", strings.Join(names, ",")))
	}

	fields := s.Fields()
	if len(fields) == 0 {
		code.WriteString(fmt.Sprintf("type %s struct{}\n", s.Name))
		return code.String()
	}

	code.WriteString(fmt.Sprintf("type %s struct {\n", s.Name))
	for _, f := range fields {
		code.WriteString(fmt.Sprintf("\t%s %s\n", FieldName(schema.ItemName(f)), goType(f)))
	}
	code.WriteString("}\n")
	return code.String()
}

// generateMethods generates the inherent methods: the derived capabilities
// followed by any structure methods
func (g *Generator) generateMethods(s *structure.Structure) string {
	var code strings.Builder

	for _, d := range s.Derives {
		switch d {
		case structure.Clone:
			code.WriteString(g.generateClone(s))
		case structure.Debug:
			code.WriteString(g.generateString(s))
		case structure.Default:
			// The zero value is the default
		}
	}

	for _, m := range s.Methods {
		if code.Len() > 0 {
			code.WriteString("\n")
		}
		code.WriteString(m.Source)
	}

	return code.String()
}

// generateClone generates a deep copy of the structure's lists
func (g *Generator) generateClone(s *structure.Structure) string {
	var code strings.Builder

	code.WriteString("// Clone returns a copy of s that shares no list storage with it.\n")
	code.WriteString(fmt.Sprintf("func (s *%s) Clone() *%s {\n", s.Name, s.Name))
	code.WriteString("\tc := *s\n")
	for _, f := range s.Fields() {
		if l, ok := f.(schema.List); ok {
			g.use("slices")
			name := FieldName(l.Name)
			code.WriteString(fmt.Sprintf("\tc.%s = slices.Clone(s.%s)\n", name, name))
		}
	}
	code.WriteString("\treturn &c\n")
	code.WriteString("}\n\n")

	return code.String()
}

// generateString generates a debug representation
func (g *Generator) generateString(s *structure.Structure) string {
	g.use("fmt")

	var code strings.Builder
	code.WriteString(fmt.Sprintf("func (s *%s) String() string {\n", s.Name))
	code.WriteString(fmt.Sprintf("\treturn fmt.Sprintf(\"%s%%+v\", *s)\n", s.Name))
	code.WriteString("}\n\n")
	return code.String()
}

// generateTrait generates the methods satisfying one kind-specific interface
func (g *Generator) generateTrait(s *structure.Structure, t structure.Trait) string {
	var code strings.Builder
	rt := g.runtimeName()
	g.useRuntime()

	switch t := t.(type) {
	case structure.EventTrait:
		code.WriteString(fmt.Sprintf("// EventOpcode returns the event code of %s.\n", s.Name))
		code.WriteString(fmt.Sprintf("func (*%s) EventOpcode() uint8 { return %d }\n\n", s.Name, t.Opcode))
		code.WriteString(fmt.Sprintf("var _ %s.Event = (*%s)(nil)\n", rt, s.Name))

	case structure.ErrorTrait:
		code.WriteString(fmt.Sprintf("// ErrorOpcode returns the error code of %s.\n", s.Name))
		code.WriteString(fmt.Sprintf("func (*%s) ErrorOpcode() uint8 { return %d }\n\n", s.Name, t.Opcode))
		code.WriteString(fmt.Sprintf("var _ %s.Error = (*%s)(nil)\n", rt, s.Name))

	case structure.RequestTrait:
		reply := t.Reply
		if reply == "" {
			reply = rt + ".NoReply"
		}
		code.WriteString(fmt.Sprintf("// RequestOpcode returns the major opcode of %s.\n", s.Name))
		code.WriteString(fmt.Sprintf("func (*%s) RequestOpcode() uint8 { return %d }\n\n", s.Name, t.Opcode))
		code.WriteString(fmt.Sprintf("// Reply returns the zero value of the reply to %s.\n", s.Name))
		code.WriteString(fmt.Sprintf("func (*%s) Reply() %s { return %s{} }\n\n", s.Name, reply, reply))
		code.WriteString(fmt.Sprintf("var _ %s.Request[%s] = (*%s)(nil)\n", rt, reply, s.Name))

	default:
		panic(fmt.Sprintf("codegen: unexpected trait %T", t))
	}

	return code.String()
}
