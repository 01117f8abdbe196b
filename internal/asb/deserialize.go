package asb

import (
	"fmt"
	"sort"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// DefectError reports a list whose length slot was never declared, or that
// has more than one. It means the protocol description is inconsistent, not
// that input data is bad.
type DefectError struct {
	Struct    string
	List      string
	Duplicate bool // A second slot was declared before the list consumed the first
}

func (e *DefectError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("%s: list %q has more than one length slot", e.Struct, e.List)
	}
	return fmt.Sprintf("%s: cannot find length slot for list %q", e.Struct, e.List)
}

// UnusedSlotError reports length slots that no list consumed
type UnusedSlotError struct {
	Struct string
	Lists  []string
}

func (e *UnusedSlotError) Error() string {
	return fmt.Sprintf("%s: length slots never consumed for %v", e.Struct, e.Lists)
}

// Deserialize produces the read sequence for items.
//
// Each length slot is loaded into a fresh temporary lenK and recorded against
// its owning list; the list removes the entry when it consumes it. The names of
// lists whose entries were left over are returned sorted.
func Deserialize(structName string, items []schema.Item) ([]Stmt, []string, error) {
	lens := make(map[string]string, len(items))
	counter := 0

	// Temporaries never shadow a member of the same name
	taken := make(map[string]bool, len(items))
	for _, it := range items {
		if name := schema.ItemName(it); name != "" {
			taken[name] = true
		}
	}

	stmts := make([]Stmt, 0, 2*len(items)+2)
	stmts = append(stmts, CreateIndex{})

	var fields []string
	for _, it := range items {
		switch it := it.(type) {
		case schema.Field:
			stmts = append(stmts,
				LoadVar{Name: it.Name, Type: it.Type},
				AdvanceType{Type: it.Type},
			)
			fields = append(fields, it.Name)

		case schema.Padding:
			stmts = append(stmts, AdvanceBytes{N: it.Bytes})

		case schema.LenSlot:
			if _, dup := lens[it.List]; dup {
				return nil, nil, &DefectError{Struct: structName, List: it.List, Duplicate: true}
			}
			tmp := fmt.Sprintf("len%d", counter)
			for taken[tmp] {
				counter++
				tmp = fmt.Sprintf("len%d", counter)
			}
			counter++
			lens[it.List] = tmp
			stmts = append(stmts,
				LoadVar{Name: tmp, Type: it.Type},
				AdvanceType{Type: it.Type},
			)

		case schema.List:
			var n LenExpr
			if schema.IsSlot(it.Length) {
				tmp, ok := lens[it.Name]
				if !ok {
					return nil, nil, &DefectError{Struct: structName, List: it.Name}
				}
				delete(lens, it.Name)
				n = LenVar{Name: tmp}
			} else {
				n = lowerLength(it.Length, it.Elem)
			}
			stmts = append(stmts, LoadList{Name: it.Name, Elem: it.Elem, Len: n, Pad: it.Pad})
			fields = append(fields, it.Name)

		default:
			panic(fmt.Sprintf("asb: unexpected item %T", it))
		}
	}

	stmts = append(stmts, ReturnStruct{Struct: structName, Fields: fields})

	var unused []string
	for list := range lens {
		unused = append(unused, list)
	}
	sort.Strings(unused)

	return stmts, unused, nil
}
