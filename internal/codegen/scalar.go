package codegen

import (
	"fmt"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// typeEmitter holds encode/decode code generators for a primitive
type typeEmitter struct {
	marshal   func(ctx emitCtx) string // statement writing ctx.value at b[index:]
	unmarshal func(ctx emitCtx) string // expression reading b[index:]
}

// emitCtx carries context for scalar emission
type emitCtx struct {
	value     string // Go expression being written
	goType    string // Declared Go type
	needsCast bool   // goType differs from the primitive
}

func newEmitCtx(t schema.Type, value string) emitCtx {
	return emitCtx{
		value:     value,
		goType:    t.Name,
		needsCast: t.Name != t.Underlying,
	}
}

// wrap converts expr to the declared type when it differs from want
func (c emitCtx) wrap(want, expr string) string {
	if c.goType == want {
		return expr
	}
	return fmt.Sprintf("%s(%s)", c.goType, expr)
}

// emitters returns encode/decode generators keyed by primitive type
func (g *Generator) emitters() map[string]typeEmitter {
	order := g.endianPrefix()

	byteEmitter := typeEmitter{
		marshal: func(c emitCtx) string {
			v := c.value
			if c.goType != "uint8" && c.goType != "byte" {
				v = "byte(" + v + ")"
			}
			return fmt.Sprintf("b[index] = %s", v)
		},
		unmarshal: func(c emitCtx) string {
			if c.goType == "uint8" || c.goType == "byte" {
				return "b[index]"
			}
			return fmt.Sprintf("%s(b[index])", c.goType)
		},
	}

	unsigned := func(bits int) typeEmitter {
		ut := fmt.Sprintf("uint%d", bits)
		return typeEmitter{
			marshal: func(c emitCtx) string {
				v := c.value
				if c.goType != ut {
					v = fmt.Sprintf("%s(%s)", ut, v)
				}
				g.use("encoding/binary")
				return fmt.Sprintf("%s.PutUint%d(b[index:], %s)", order, bits, v)
			},
			unmarshal: func(c emitCtx) string {
				g.use("encoding/binary")
				return c.wrap(ut, fmt.Sprintf("%s.Uint%d(b[index:])", order, bits))
			},
		}
	}

	float := func(bits int) typeEmitter {
		ft := fmt.Sprintf("float%d", bits)
		return typeEmitter{
			marshal: func(c emitCtx) string {
				v := c.value
				if c.needsCast {
					v = fmt.Sprintf("%s(%s)", ft, v)
				}
				g.use("encoding/binary")
				g.use("math")
				return fmt.Sprintf("%s.PutUint%d(b[index:], math.Float%dbits(%s))", order, bits, bits, v)
			},
			unmarshal: func(c emitCtx) string {
				g.use("encoding/binary")
				g.use("math")
				return c.wrap(ft, fmt.Sprintf("math.Float%dfrombits(%s.Uint%d(b[index:]))", bits, order, bits))
			},
		}
	}

	return map[string]typeEmitter{
		"uint8": byteEmitter,
		"byte":  byteEmitter,
		"int8":  byteEmitter,
		"bool": {
			marshal: func(c emitCtx) string {
				v := c.value
				if c.needsCast {
					v = "bool(" + v + ")"
				}
				g.useRuntime()
				return fmt.Sprintf("b[index] = %s.BoolByte(%s)", g.runtimeName(), v)
			},
			unmarshal: func(c emitCtx) string {
				return c.wrap("bool", "b[index] != 0")
			},
		},
		"uint16":  unsigned(16),
		"int16":   unsigned(16),
		"uint32":  unsigned(32),
		"int32":   unsigned(32),
		"uint64":  unsigned(64),
		"int64":   unsigned(64),
		"float32": float(32),
		"float64": float(64),
	}
}

// putScalar renders the statement writing value of type t at b[index:]
func (g *Generator) putScalar(t schema.Type, value string) string {
	e, ok := g.emitters()[t.Underlying]
	if !ok {
		panic(fmt.Sprintf("codegen: no emitter for %s", t))
	}
	return e.marshal(newEmitCtx(t, value))
}

// putLength renders the statement writing an int-typed count as type t
func (g *Generator) putLength(t schema.Type, value string) string {
	e, ok := g.emitters()[t.Underlying]
	if !ok {
		panic(fmt.Sprintf("codegen: no emitter for %s", t))
	}
	return e.marshal(emitCtx{value: value, goType: "int", needsCast: true})
}

// getScalar renders the expression reading a value of type t from b[index:]
func (g *Generator) getScalar(t schema.Type) string {
	e, ok := g.emitters()[t.Underlying]
	if !ok {
		panic(fmt.Sprintf("codegen: no emitter for %s", t))
	}
	return e.unmarshal(newEmitCtx(t, ""))
}
