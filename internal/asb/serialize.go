package asb

import (
	"fmt"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// Serialize produces the write sequence for items.
// Length slots always write the list's current length.
func Serialize(items []schema.Item) []Stmt {
	stmts := make([]Stmt, 0, len(items)+2)
	stmts = append(stmts, CreateIndex{})

	for _, it := range items {
		switch it := it.(type) {
		case schema.Field:
			stmts = append(stmts, AppendField{Name: it.Name, Type: it.Type})
		case schema.Padding:
			stmts = append(stmts, PadIndex{Bytes: it.Bytes})
		case schema.LenSlot:
			stmts = append(stmts, AppendLength{List: it.List, Type: it.Type})
		case schema.List:
			stmts = append(stmts, AppendList{Name: it.Name, Elem: it.Elem, Pad: it.Pad})
		default:
			panic(fmt.Sprintf("asb: unexpected item %T", it))
		}
	}

	return append(stmts, ReturnIndex{})
}
