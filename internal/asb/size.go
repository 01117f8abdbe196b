package asb

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// SizePart is one term of a size sum
type SizePart interface {
	sizePart()
}

// Bytes is a literal byte count
type Bytes struct {
	N int
}

// SizeofField is the wire size of a field's value
type SizeofField struct {
	Name string
	Type schema.Type
}

// SizeofType is the wire size of a type
type SizeofType struct {
	Type schema.Type
}

// ListTimesSize is the list's runtime length times the element size, plus Pad
type ListTimesSize struct {
	Name string
	Elem schema.Type
	Pad  int
}

func (Bytes) sizePart()         {}
func (SizeofField) sizePart()   {}
func (SizeofType) sizePart()    {}
func (ListTimesSize) sizePart() {}

// Sum is an ordered sum of size parts
type Sum []SizePart

// Size maps each item to one part of the size sum, in item order
func Size(items []schema.Item) Sum {
	sum := make(Sum, 0, len(items))
	for _, it := range items {
		switch it := it.(type) {
		case schema.Field:
			sum = append(sum, SizeofField{Name: it.Name, Type: it.Type})
		case schema.Padding:
			sum = append(sum, Bytes{N: it.Bytes})
		case schema.List:
			sum = append(sum, ListTimesSize{Name: it.Name, Elem: it.Elem, Pad: it.Pad})
		case schema.LenSlot:
			sum = append(sum, SizeofType{Type: it.Type})
		default:
			panic(fmt.Sprintf("asb: unexpected item %T", it))
		}
	}
	return sum
}

// Fixed folds the sum to a byte count when no part depends on list lengths
func (s Sum) Fixed() (int, bool) {
	total := 0
	for _, p := range s {
		switch p := p.(type) {
		case Bytes:
			total += p.N
		case SizeofField:
			total += p.Type.Size
		case SizeofType:
			total += p.Type.Size
		case ListTimesSize:
			return 0, false
		}
	}
	return total, true
}

// Eval computes the total size given each list's element count
func (s Sum) Eval(lens map[string]int) int {
	total := 0
	for _, p := range s {
		switch p := p.(type) {
		case Bytes:
			total += p.N
		case SizeofField:
			total += p.Type.Size
		case SizeofType:
			total += p.Type.Size
		case ListTimesSize:
			total += lens[p.Name]*p.Elem.Size + p.Pad
		}
	}
	return total
}

func (s Sum) String() string {
	if len(s) == 0 {
		return "0"
	}
	terms := make([]string, len(s))
	for i, p := range s {
		switch p := p.(type) {
		case Bytes:
			terms[i] = fmt.Sprintf("%d", p.N)
		case SizeofField:
			terms[i] = fmt.Sprintf("sizeof(%s)", p.Name)
		case SizeofType:
			terms[i] = fmt.Sprintf("sizeof(%s)", p.Type.Name)
		case ListTimesSize:
			terms[i] = fmt.Sprintf("len(%s)*%d", p.Name, p.Elem.Size)
			if p.Pad > 0 {
				terms[i] += fmt.Sprintf("+%d", p.Pad)
			}
		}
	}
	return strings.Join(terms, " + ")
}
