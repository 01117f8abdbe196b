// Package asb synthesizes the size expression and the serialize/deserialize
// instruction sequences of a structure from its wire items.
package asb

import (
	"fmt"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// Descriptor pairs a size expression with both instruction sequences
type Descriptor struct {
	Size        Sum
	Serialize   []Stmt
	Deserialize []Stmt

	// UnusedSlots names lists whose length slot no list consumed
	UnusedSlots []string
}

// Populate builds the full descriptor for a structure
func Populate(structName string, items []schema.Item) (Descriptor, error) {
	de, unused, err := Deserialize(structName, items)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Size:        Size(items),
		Serialize:   Serialize(items),
		Deserialize: de,
		UnusedSlots: unused,
	}, nil
}

// Stmt is one instruction of a serialize or deserialize sequence
type Stmt interface {
	stmt()
}

// CreateIndex starts the cursor at 0
type CreateIndex struct{}

// AppendField writes a field's encoding at the cursor and advances it
type AppendField struct {
	Name string
	Type schema.Type
}

// PadIndex writes Bytes zero bytes and advances the cursor
type PadIndex struct {
	Bytes int
}

// AppendLength writes the current element count of List as Type
type AppendLength struct {
	List string
	Type schema.Type
}

// AppendList writes every element of Name followed by Pad zero bytes
type AppendList struct {
	Name string
	Elem schema.Type
	Pad  int
}

// ReturnIndex yields the final cursor
type ReturnIndex struct{}

// LoadVar reads a Type at the cursor into the local variable Name
type LoadVar struct {
	Name string
	Type schema.Type
}

// AdvanceType moves the cursor past one Type
type AdvanceType struct {
	Type schema.Type
}

// AdvanceBytes moves the cursor N bytes without reading
type AdvanceBytes struct {
	N int
}

// LoadList decodes Len elements into the local variable Name,
// then skips Pad trailing bytes
type LoadList struct {
	Name string
	Elem schema.Type
	Len  LenExpr
	Pad  int
}

// ReturnStruct constructs Struct from the bound Fields and the cursor
type ReturnStruct struct {
	Struct string
	Fields []string
}

func (CreateIndex) stmt()  {}
func (AppendField) stmt()  {}
func (PadIndex) stmt()     {}
func (AppendLength) stmt() {}
func (AppendList) stmt()   {}
func (ReturnIndex) stmt()  {}
func (LoadVar) stmt()      {}
func (AdvanceType) stmt()  {}
func (AdvanceBytes) stmt() {}
func (LoadList) stmt()     {}
func (ReturnStruct) stmt() {}

// LenExpr is the element count of a LoadList
type LenExpr interface {
	lenExpr()
	String() string
}

// LenVar is a length-slot temporary
type LenVar struct {
	Name string
}

// LenConst is a literal count
type LenConst struct {
	N int
}

// LenField is a previously loaded field
type LenField struct {
	Name string
}

// LenBinary combines two counts
type LenBinary struct {
	Op    byte
	Left  LenExpr
	Right LenExpr
}

// LenRemaining is every remaining input byte divided by the element size
type LenRemaining struct {
	Elem schema.Type
}

func (LenVar) lenExpr()       {}
func (LenConst) lenExpr()     {}
func (LenField) lenExpr()     {}
func (LenBinary) lenExpr()    {}
func (LenRemaining) lenExpr() {}

func (l LenVar) String() string   { return l.Name }
func (l LenConst) String() string { return fmt.Sprintf("%d", l.N) }
func (l LenField) String() string { return l.Name }
func (l LenBinary) String() string {
	return fmt.Sprintf("(%s %c %s)", l.Left, l.Op, l.Right)
}
func (l LenRemaining) String() string {
	return fmt.Sprintf("remaining/%d", l.Elem.Size)
}

// lowerLength converts a non-slot schema length into a LenExpr
func lowerLength(l schema.Length, elem schema.Type) LenExpr {
	switch l := l.(type) {
	case schema.ConstLength:
		return LenConst{N: l.N}
	case schema.FieldLength:
		return LenField{Name: l.Name}
	case schema.BinaryLength:
		return LenBinary{
			Op:    l.Op,
			Left:  lowerLength(l.Left, elem),
			Right: lowerLength(l.Right, elem),
		}
	case schema.RemainingLength:
		return LenRemaining{Elem: elem}
	}
	panic(fmt.Sprintf("asb: unexpected length %T", l))
}
