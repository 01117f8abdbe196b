package asb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// Reference evaluator for instruction sequences over scalar-only structures.
// Field values are uint64 and list values are []uint64; both are truncated to
// the wire size of their type, little endian.

var errShort = errors.New("short buffer")

func put(buf []byte, size int, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:size]...)
}

func get(b []byte, index, size int) (uint64, error) {
	if index+size > len(b) {
		return 0, errShort
	}
	var tmp [8]byte
	copy(tmp[:], b[index:index+size])
	return binary.LittleEndian.Uint64(tmp[:]), nil
}

func evalSerialize(stmts []Stmt, rec map[string]any) ([]byte, int) {
	var buf []byte
	index := -1
	for _, st := range stmts {
		switch st := st.(type) {
		case CreateIndex:
			index = 0
		case AppendField:
			buf = put(buf, st.Type.Size, rec[st.Name].(uint64))
			index += st.Type.Size
		case PadIndex:
			buf = append(buf, make([]byte, st.Bytes)...)
			index += st.Bytes
		case AppendLength:
			buf = put(buf, st.Type.Size, uint64(len(rec[st.List].([]uint64))))
			index += st.Type.Size
		case AppendList:
			for _, v := range rec[st.Name].([]uint64) {
				buf = put(buf, st.Elem.Size, v)
				index += st.Elem.Size
			}
			buf = append(buf, make([]byte, st.Pad)...)
			index += st.Pad
		case ReturnIndex:
			return buf, index
		default:
			panic(fmt.Sprintf("unexpected serialize statement %T", st))
		}
	}
	panic("sequence did not return")
}

func evalLen(e LenExpr, vars map[string]uint64, b []byte, index int) int {
	switch e := e.(type) {
	case LenVar:
		return int(vars[e.Name])
	case LenField:
		return int(vars[e.Name])
	case LenConst:
		return e.N
	case LenRemaining:
		return (len(b) - index) / e.Elem.Size
	case LenBinary:
		l, r := evalLen(e.Left, vars, b, index), evalLen(e.Right, vars, b, index)
		switch e.Op {
		case '+':
			return l + r
		case '-':
			return l - r
		case '*':
			return l * r
		case '/':
			return l / r
		}
	}
	panic(fmt.Sprintf("unexpected length %T", e))
}

func evalDeserialize(stmts []Stmt, b []byte) (map[string]any, int, error) {
	vars := make(map[string]uint64)
	lists := make(map[string][]uint64)
	index := -1
	for _, st := range stmts {
		switch st := st.(type) {
		case CreateIndex:
			index = 0
		case LoadVar:
			v, err := get(b, index, st.Type.Size)
			if err != nil {
				return nil, 0, err
			}
			vars[st.Name] = v
		case AdvanceType:
			index += st.Type.Size
		case AdvanceBytes:
			index += st.N
		case LoadList:
			n := evalLen(st.Len, vars, b, index)
			out := make([]uint64, n)
			for i := range out {
				v, err := get(b, index, st.Elem.Size)
				if err != nil {
					return nil, 0, err
				}
				out[i] = v
				index += st.Elem.Size
			}
			lists[st.Name] = out
			index += st.Pad
		case ReturnStruct:
			if index > len(b) {
				return nil, 0, errShort
			}
			rec := make(map[string]any, len(st.Fields))
			for _, f := range st.Fields {
				if l, ok := lists[f]; ok {
					rec[f] = l
				} else {
					rec[f] = vars[f]
				}
			}
			return rec, index, nil
		default:
			panic(fmt.Sprintf("unexpected deserialize statement %T", st))
		}
	}
	panic("sequence did not return")
}

// Scalar types shared by the tests
var (
	u8  = schema.Primitive("uint8")
	u16 = schema.Primitive("uint16")
	u32 = schema.Primitive("uint32")
	u64 = schema.Primitive("uint64")
)
