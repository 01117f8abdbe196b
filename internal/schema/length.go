package schema

import "fmt"

// Length describes where a list's element count comes from
type Length interface {
	length()
	String() string
}

// SlotLength resolves the count from the single LenSlot owned by the list
type SlotLength struct{}

// ConstLength is a fixed element count
type ConstLength struct {
	N int
}

// FieldLength reads the count from a previously decoded field
type FieldLength struct {
	Name string
}

// BinaryLength combines two length expressions with + - * or /
type BinaryLength struct {
	Op    byte
	Left  Length
	Right Length
}

// RemainingLength consumes every remaining input byte
type RemainingLength struct{}

func (SlotLength) length()      {}
func (ConstLength) length()     {}
func (FieldLength) length()     {}
func (BinaryLength) length()    {}
func (RemainingLength) length() {}

func (SlotLength) String() string      { return "slot" }
func (l ConstLength) String() string   { return fmt.Sprintf("%d", l.N) }
func (l FieldLength) String() string   { return l.Name }
func (RemainingLength) String() string { return "remaining" }
func (l BinaryLength) String() string {
	return fmt.Sprintf("(%s %c %s)", l.Left, l.Op, l.Right)
}

// IsSlot reports whether l is resolved through a length slot
func IsSlot(l Length) bool {
	_, ok := l.(SlotLength)
	return ok
}
