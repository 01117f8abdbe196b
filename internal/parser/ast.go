package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// Load reads a protocol description, choosing the frontend by extension:
// .yaml and .yml are YAML documents, .go files are annotated Go source.
func Load(path string) (*Schema, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".go":
		return ParseFile(path)
	}
	return nil, fmt.Errorf("%s: unsupported input (want .yaml, .yml or .go)", path)
}

// sourceStruct is a struct declaration carrying a @message annotation
type sourceStruct struct {
	name  string
	anno  *MessageAnnotation
	brief string
	desc  string
	items []itemSpec
}

// ParseFile parses a Go source file and extracts types with @message annotations.
// Defined scalar types (type Window uint32) become aliases.
func ParseFile(filename string) (*Schema, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	reg := schema.NewTypeRegistry()
	structs, err := extractTypes(file, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	specs, err := pairReplies(structs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	b := &builder{reg: reg}
	s, err := b.build(specs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func extractTypes(file *ast.File, reg *schema.TypeRegistry) ([]sourceStruct, error) {
	var structs []sourceStruct

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			if ident, ok := typeSpec.Type.(*ast.Ident); ok {
				reg.RegisterAlias(typeSpec.Name.Name, ident.Name)
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			anno, lines, err := extractAnnotation(doc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}
			if anno == nil {
				continue // No @message, skip this type
			}

			items, err := extractItems(structType)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, typeSpec.Name.Name, err)
			}

			brief, desc := splitDoc(typeSpec.Name.Name, lines)
			structs = append(structs, sourceStruct{
				name:  typeSpec.Name.Name,
				anno:  anno,
				brief: brief,
				desc:  desc,
				items: items,
			})
		}
	}

	return structs, nil
}

// extractAnnotation returns the annotation and the remaining doc lines
func extractAnnotation(doc *ast.CommentGroup) (*MessageAnnotation, []string, error) {
	if doc == nil {
		return nil, nil, nil
	}

	// Extract comment text lines
	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found, err := FindAnnotation(lines)
	if err != nil || !found {
		return nil, nil, err
	}

	var rest []string
	for _, l := range lines {
		if !strings.HasPrefix(l, "@message") {
			rest = append(rest, l)
		}
	}
	return anno, rest, nil
}

// splitDoc turns Go doc lines into a brief and a description.
// "Point is a location." becomes the brief "is a location.".
func splitDoc(name string, lines []string) (string, string) {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", ""
	}

	brief := strings.TrimSpace(strings.TrimPrefix(lines[0], name+" "))
	desc := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	return brief, desc
}

func extractItems(structType *ast.StructType) ([]itemSpec, error) {
	var items []itemSpec

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded field %s is not supported", typeToString(field.Type))
		}

		var tag *ItemTag
		if field.Tag != nil {
			st := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
			if wireTag := st.Get("wire"); wireTag != "" {
				t, err := ParseTag(wireTag)
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", field.Names[0].Name, err)
				}
				tag = t
			}
		}

		goType := typeToString(field.Type)
		for _, ident := range field.Names {
			it, err := fieldItemSpec(ident.Name, goType, tag)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", ident.Name, err)
			}
			items = append(items, it)
		}
	}

	return items, nil
}

func fieldItemSpec(name, goType string, tag *ItemTag) (itemSpec, error) {
	if name == "_" {
		switch {
		case tag == nil:
			return itemSpec{}, fmt.Errorf("blank field needs a pad= or len= tag")
		case tag.LenFor != "":
			return itemSpec{kind: lenSlotItem, name: tag.LenFor, typ: goType}, nil
		case tag.Pad > 0 && tag.Length == "":
			return itemSpec{kind: padItem, pad: tag.Pad}, nil
		}
		return itemSpec{}, fmt.Errorf("blank field takes pad= or len=")
	}

	if elem, ok := strings.CutPrefix(goType, "[]"); ok {
		if tag != nil && tag.LenFor != "" {
			return itemSpec{}, fmt.Errorf("len= belongs on a blank field")
		}
		it := itemSpec{kind: listItem, name: name, typ: elem}
		if tag != nil {
			it.pad = tag.Pad
			it.length = tag.Length
		}
		return it, nil
	}

	if tag != nil {
		return itemSpec{}, fmt.Errorf("scalar and struct fields take no wire tag")
	}
	return itemSpec{kind: fieldItem, name: name, typ: goType}, nil
}

// pairReplies attaches kind=reply structs to the requests naming them.
// Every reply struct must belong to exactly one request.
func pairReplies(structs []sourceStruct) ([]messageSpec, error) {
	replies := make(map[string]*sourceStruct)
	for i := range structs {
		if structs[i].anno.Kind == "reply" {
			replies[structs[i].name] = &structs[i]
		}
	}

	used := make(map[string]bool)
	var specs []messageSpec
	for _, s := range structs {
		if s.anno.Kind == "reply" {
			continue
		}
		ms := s.spec()
		if s.anno.Reply != "" {
			r, ok := replies[s.anno.Reply]
			if !ok {
				return nil, fmt.Errorf("%w: %s: reply %s is not a kind=reply struct", ErrInvalid, s.name, s.anno.Reply)
			}
			if used[r.name] {
				return nil, fmt.Errorf("%w: %s: reply %s already belongs to another request", ErrInvalid, s.name, r.name)
			}
			used[r.name] = true
			// The reply structure is named after its request
			reply := r.spec()
			reply.name = s.name
			ms.reply = &reply
		}
		specs = append(specs, ms)
	}

	for _, s := range structs {
		if s.anno.Kind == "reply" && !used[s.name] {
			return nil, fmt.Errorf("%w: %s: reply is not referenced by any request", ErrInvalid, s.name)
		}
	}
	return specs, nil
}

func (s sourceStruct) spec() messageSpec {
	return messageSpec{
		name:   s.name,
		brief:  s.brief,
		desc:   s.desc,
		kind:   s.anno.Kind,
		opcode: s.anno.Opcode,
		items:  s.items,
	}
}

// typeToString converts AST type expression to string
// Only supports types with defined binary layout
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, Point, etc.
		return t.Name

	case *ast.ArrayType:
		if t.Len == nil {
			// Slice: []byte, []Point
			return "[]" + typeToString(t.Elt)
		}
		// Array: [8]byte
		return fmt.Sprintf("[%s]%s", exprToString(t.Len), typeToString(t.Elt))

	case *ast.StarExpr:
		// Pointer: *Node (not supported for binary layout)
		return "*" + typeToString(t.X)

	case *ast.StructType:
		return "struct{}"

	default:
		return "unknown"
	}
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	default:
		return "?"
	}
}
