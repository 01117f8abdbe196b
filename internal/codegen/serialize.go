package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/schema"
	"github.com/alexhholmes/wiregen/internal/structure"
)

// generateSerialize generates WireSize, AsBytes and the FromBytes decoder
func (g *Generator) generateSerialize(s *structure.Structure) string {
	var code strings.Builder

	code.WriteString(g.generateWireSize(s))
	code.WriteString("\n")
	code.WriteString(g.generateAsBytes(s))
	code.WriteString("\n")
	code.WriteString(g.generateFromBytes(s))

	return code.String()
}

// sizeTerm renders one part of the size sum
func sizeTerm(p asb.SizePart) string {
	switch p := p.(type) {
	case asb.Bytes:
		return fmt.Sprintf("%d", p.N)
	case asb.SizeofField:
		if p.Type.IsScalar() {
			return fmt.Sprintf("%d", p.Type.Size)
		}
		return fmt.Sprintf("s.%s.WireSize()", FieldName(p.Name))
	case asb.SizeofType:
		return fmt.Sprintf("%d", p.Type.Size)
	case asb.ListTimesSize:
		term := fmt.Sprintf("len(s.%s)*%d", FieldName(p.Name), p.Elem.Size)
		if p.Pad > 0 {
			term += fmt.Sprintf(" + %d", p.Pad)
		}
		return term
	}
	panic(fmt.Sprintf("codegen: unexpected size part %T", p))
}

// generateWireSize renders the size sum as an addition expression
func (g *Generator) generateWireSize(s *structure.Structure) string {
	var code strings.Builder

	terms := make([]string, 0, len(s.ASB.Size))
	for _, p := range s.ASB.Size {
		terms = append(terms, sizeTerm(p))
	}
	expr := "0"
	if len(terms) > 0 {
		expr = strings.Join(terms, " + ")
	}

	code.WriteString("// WireSize returns the number of bytes s occupies on the wire.\n")
	code.WriteString(fmt.Sprintf("func (s *%s) WireSize() int {\n", s.Name))
	code.WriteString(fmt.Sprintf("\treturn %s\n", expr))
	code.WriteString("}\n")

	return code.String()
}

// generateAsBytes renders the serialize statements.
// b must be at least WireSize() bytes long.
func (g *Generator) generateAsBytes(s *structure.Structure) string {
	var code strings.Builder

	code.WriteString("// AsBytes encodes s into b and returns the number of bytes written.\n")
	code.WriteString("// b must hold at least s.WireSize() bytes.\n")
	if hasLengthSlot(s) {
		code.WriteString(fmt.Sprintf("// It panics with a *%s.LengthError when a list is too long for its length slot.\n", g.runtimeName()))
	}
	code.WriteString(fmt.Sprintf("func (s *%s) AsBytes(b []byte) int {\n", s.Name))

	for _, st := range s.ASB.Serialize {
		switch st := st.(type) {
		case asb.CreateIndex:
			code.WriteString("\tindex := 0\n")

		case asb.AppendField:
			value := "s." + FieldName(st.Name)
			if st.Type.IsScalar() {
				code.WriteString(fmt.Sprintf("\t%s\n", g.putScalar(st.Type, value)))
				code.WriteString(fmt.Sprintf("\tindex += %d\n", st.Type.Size))
			} else {
				code.WriteString(fmt.Sprintf("\tindex += %s.AsBytes(b[index:])\n", value))
			}

		case asb.PadIndex:
			code.WriteString(pad(st.Bytes))

		case asb.AppendLength:
			value := fmt.Sprintf("len(s.%s)", FieldName(st.List))
			code.WriteString(g.lengthGuard(s.Name, st, value))
			code.WriteString(fmt.Sprintf("\t%s\n", g.putLength(st.Type, value)))
			code.WriteString(fmt.Sprintf("\tindex += %d\n", st.Type.Size))

		case asb.AppendList:
			code.WriteString(g.generateListMarshal(st))

		case asb.ReturnIndex:
			code.WriteString("\treturn index\n")

		default:
			panic(fmt.Sprintf("codegen: unexpected serialize statement %T", st))
		}
	}

	code.WriteString("}\n")
	return code.String()
}

func hasLengthSlot(s *structure.Structure) bool {
	for _, st := range s.ASB.Serialize {
		if _, ok := st.(asb.AppendLength); ok {
			return true
		}
	}
	return false
}

// lengthLimits maps a slot primitive to the largest count it holds.
// 64-bit slots hold any int and need no guard. The uint32 bound is compared
// in uint64 so the constant fits on 32-bit platforms.
var lengthLimits = map[string]string{
	"uint8":  "math.MaxUint8",
	"byte":   "math.MaxUint8",
	"int8":   "math.MaxInt8",
	"uint16": "math.MaxUint16",
	"int16":  "math.MaxInt16",
	"uint32": "math.MaxUint32",
	"int32":  "math.MaxInt32",
}

// lengthGuard panics before a list length that would not fit its slot is
// written
func (g *Generator) lengthGuard(structName string, st asb.AppendLength, value string) string {
	limit, ok := lengthLimits[st.Type.Underlying]
	if !ok {
		return ""
	}
	g.use("math")
	g.useRuntime()

	cond := fmt.Sprintf("%s > %s", value, limit)
	if st.Type.Underlying == "uint32" {
		cond = fmt.Sprintf("uint64(%s) > %s", value, limit)
	}

	var code strings.Builder
	code.WriteString(fmt.Sprintf("\tif %s {\n", cond))
	code.WriteString(fmt.Sprintf("\t\tpanic(&%s.LengthError{Struct: %q, List: %q, Len: %s, Max: %s})\n",
		g.runtimeName(), structName, st.List, value, limit))
	code.WriteString("\t}\n")
	return code.String()
}

// pad zeroes n reserved bytes and advances the cursor
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\tclear(b[index : index+%d])\n\tindex += %d\n", n, n)
}

func isByte(t schema.Type) bool {
	return t.Name == "byte" || t.Name == "uint8"
}

// generateListMarshal writes every element then the trailing padding
func (g *Generator) generateListMarshal(st asb.AppendList) string {
	var code strings.Builder
	name := "s." + FieldName(st.Name)

	switch {
	case isByte(st.Elem):
		code.WriteString(fmt.Sprintf("\tindex += copy(b[index:], %s)\n", name))
	case st.Elem.IsScalar():
		code.WriteString(fmt.Sprintf("\tfor _, elem := range %s {\n", name))
		code.WriteString(fmt.Sprintf("\t\t%s\n", g.putScalar(st.Elem, "elem")))
		code.WriteString(fmt.Sprintf("\t\tindex += %d\n", st.Elem.Size))
		code.WriteString("\t}\n")
	default:
		code.WriteString(fmt.Sprintf("\tfor i := range %s {\n", name))
		code.WriteString(fmt.Sprintf("\t\tindex += %s[i].AsBytes(b[index:])\n", name))
		code.WriteString("\t}\n")
	}
	code.WriteString(pad(st.Pad))

	return code.String()
}
