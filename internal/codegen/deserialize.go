package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/structure"
)

// FromBytesName returns the name of the decoder generated for a structure
func FromBytesName(structName string) string {
	return structName + "FromBytes"
}

// fromBytesCtx tracks state while rendering one decoder
type fromBytesCtx struct {
	structName string
	fields     map[string]bool // Names bound to the result
	usedTemps  map[string]bool // Length temporaries consumed by a list
	counts     int             // Fresh count variables
	unchecked  bool            // Cursor advanced past the last bounds check
}

// fail renders the early return for truncated input
func (g *Generator) fail(c *fromBytesCtx) string {
	g.useRuntime()
	return fmt.Sprintf("return %s{}, 0, %s.ErrShortBuffer", c.structName, g.runtimeName())
}

// generateFromBytes renders the deserialize statements as a decoder function
func (g *Generator) generateFromBytes(s *structure.Structure) string {
	var code strings.Builder

	c := &fromBytesCtx{
		structName: s.Name,
		fields:     make(map[string]bool),
		usedTemps:  make(map[string]bool),
	}
	for _, st := range s.ASB.Deserialize {
		switch st := st.(type) {
		case asb.ReturnStruct:
			for _, f := range st.Fields {
				c.fields[f] = true
			}
		case asb.LoadList:
			if v, ok := st.Len.(asb.LenVar); ok {
				c.usedTemps[v.Name] = true
			}
		}
	}

	fn := FromBytesName(s.Name)
	code.WriteString(fmt.Sprintf("// %s decodes a %s from the front of b and returns it with\n", fn, s.Name))
	code.WriteString("// the number of bytes consumed.\n")
	code.WriteString(fmt.Sprintf("func %s(b []byte) (%s, int, error) {\n", fn, s.Name))

	for i := 0; i < len(s.ASB.Deserialize); i++ {
		switch st := s.ASB.Deserialize[i].(type) {
		case asb.CreateIndex:
			code.WriteString("\tindex := 0\n")

		case asb.LoadVar:
			code.WriteString(g.generateLoad(c, st))

		case asb.AdvanceType:
			if st.Type.IsScalar() {
				code.WriteString(fmt.Sprintf("\tindex += %d\n", st.Type.Size))
			} else {
				code.WriteString("\tindex += n\n")
			}

		case asb.AdvanceBytes:
			if st.N > 0 {
				code.WriteString(fmt.Sprintf("\tindex += %d\n", st.N))
				c.unchecked = true
			}

		case asb.LoadList:
			code.WriteString(g.generateListUnmarshal(c, st))

		case asb.ReturnStruct:
			if c.unchecked {
				code.WriteString("\tif len(b) < index {\n")
				code.WriteString(fmt.Sprintf("\t\t%s\n", g.fail(c)))
				code.WriteString("\t}\n")
			}
			pairs := make([]string, len(st.Fields))
			for j, f := range st.Fields {
				pairs[j] = fmt.Sprintf("%s: %s", FieldName(f), local(f))
			}
			code.WriteString(fmt.Sprintf("\treturn %s{%s}, index, nil\n", st.Struct, strings.Join(pairs, ", ")))

		default:
			panic(fmt.Sprintf("codegen: unexpected deserialize statement %T", st))
		}
	}

	code.WriteString("}\n")
	return code.String()
}

// varName returns the Go variable a LoadVar binds
func (c *fromBytesCtx) varName(name string) string {
	if c.fields[name] {
		return local(name)
	}
	return name
}

// generateLoad reads one value at the cursor
func (g *Generator) generateLoad(c *fromBytesCtx, st asb.LoadVar) string {
	var code strings.Builder
	isTemp := !c.fields[st.Name]

	if !st.Type.IsScalar() {
		code.WriteString(g.cursorCheck(c))
		code.WriteString(fmt.Sprintf("\t%s, n, err := %s(b[index:])\n", c.varName(st.Name), FromBytesName(st.Type.Name)))
		code.WriteString("\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\treturn %s{}, 0, err\n", c.structName))
		code.WriteString("\t}\n")
		return code.String()
	}

	code.WriteString(fmt.Sprintf("\tif len(b) < index+%d {\n", st.Type.Size))
	code.WriteString(fmt.Sprintf("\t\t%s\n", g.fail(c)))
	code.WriteString("\t}\n")
	c.unchecked = false

	switch {
	case isTemp && !c.usedTemps[st.Name]:
		// Slot never consumed by a list; skip the value
	case isTemp:
		code.WriteString(fmt.Sprintf("\t%s := int(%s)\n", st.Name, g.getScalar(st.Type)))
	default:
		code.WriteString(fmt.Sprintf("\t%s := %s\n", c.varName(st.Name), g.getScalar(st.Type)))
	}
	return code.String()
}

// cursorCheck fails when padding skipped past the end of b, so the cursor
// can be used to slice b
func (g *Generator) cursorCheck(c *fromBytesCtx) string {
	if !c.unchecked {
		return ""
	}
	c.unchecked = false
	return fmt.Sprintf("\tif len(b) < index {\n\t\t%s\n\t}\n", g.fail(c))
}

// divisors returns the divisors of e that may be zero at run time
func divisors(e asb.LenExpr) []asb.LenExpr {
	b, ok := e.(asb.LenBinary)
	if !ok {
		return nil
	}
	out := append(divisors(b.Left), divisors(b.Right)...)
	if b.Op == '/' {
		if k, isConst := b.Right.(asb.LenConst); !isConst || k.N == 0 {
			out = append(out, b.Right)
		}
	}
	return out
}

// lenExpr renders an element count as an int expression
func lenExpr(e asb.LenExpr) string {
	switch e := e.(type) {
	case asb.LenVar:
		return e.Name
	case asb.LenConst:
		return fmt.Sprintf("%d", e.N)
	case asb.LenField:
		return fmt.Sprintf("int(%s)", local(e.Name))
	case asb.LenBinary:
		return fmt.Sprintf("(%s %c %s)", lenExpr(e.Left), e.Op, lenExpr(e.Right))
	case asb.LenRemaining:
		return fmt.Sprintf("(len(b) - index) / %d", e.Elem.Size)
	}
	panic(fmt.Sprintf("codegen: unexpected length %T", e))
}

// generateListUnmarshal decodes a list and skips its trailing padding
func (g *Generator) generateListUnmarshal(c *fromBytesCtx, st asb.LoadList) string {
	var code strings.Builder

	count, ok := "", false
	if v, isVar := st.Len.(asb.LenVar); isVar {
		count, ok = v.Name, true
	}
	if !ok {
		count = fmt.Sprintf("count%d", c.counts)
		c.counts++
		for _, d := range divisors(st.Len) {
			g.useRuntime()
			code.WriteString(fmt.Sprintf("\tif %s == 0 {\n", lenExpr(d)))
			code.WriteString(fmt.Sprintf("\t\treturn %s{}, 0, %s.ErrInvalidLength\n", c.structName, g.runtimeName()))
			code.WriteString("\t}\n")
		}
		code.WriteString(fmt.Sprintf("\t%s := %s\n", count, lenExpr(st.Len)))
	}

	v := local(st.Name)
	if st.Elem.IsScalar() {
		code.WriteString(fmt.Sprintf("\tif %s < 0 || %s > len(b) || len(b)-index < %s*%d {\n", count, count, count, st.Elem.Size))
	} else if c.unchecked {
		code.WriteString(fmt.Sprintf("\tif %s < 0 || %s > len(b) || len(b) < index {\n", count, count))
	} else {
		code.WriteString(fmt.Sprintf("\tif %s < 0 || %s > len(b) {\n", count, count))
	}
	code.WriteString(fmt.Sprintf("\t\t%s\n", g.fail(c)))
	code.WriteString("\t}\n")
	code.WriteString(fmt.Sprintf("\t%s := make([]%s, %s)\n", v, st.Elem.Name, count))

	switch {
	case isByte(st.Elem):
		code.WriteString(fmt.Sprintf("\tindex += copy(%s, b[index:])\n", v))
	case st.Elem.IsScalar():
		code.WriteString(fmt.Sprintf("\tfor i := range %s {\n", v))
		code.WriteString(fmt.Sprintf("\t\t%s[i] = %s\n", v, g.getScalar(st.Elem)))
		code.WriteString(fmt.Sprintf("\t\tindex += %d\n", st.Elem.Size))
		code.WriteString("\t}\n")
	default:
		code.WriteString(fmt.Sprintf("\tfor i := range %s {\n", v))
		code.WriteString(fmt.Sprintf("\t\telem, n, err := %s(b[index:])\n", FromBytesName(st.Elem.Name)))
		code.WriteString("\t\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\t\treturn %s{}, 0, err\n", c.structName))
		code.WriteString("\t\t}\n")
		code.WriteString(fmt.Sprintf("\t\t%s[i] = elem\n", v))
		code.WriteString("\t\tindex += n\n")
		code.WriteString("\t}\n")
	}
	c.unchecked = !st.Elem.IsScalar()

	if st.Pad > 0 {
		code.WriteString(fmt.Sprintf("\tindex += %d\n", st.Pad))
		c.unchecked = true
	}
	return code.String()
}
