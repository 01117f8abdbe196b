package asb

import (
	"fmt"
	"strings"
)

// Format renders one statement for listings, e.g. "LoadList names []Atom len=len0"
func Format(st Stmt) string {
	switch st := st.(type) {
	case CreateIndex:
		return "CreateIndex"
	case AppendField:
		return fmt.Sprintf("AppendField %s %s", st.Name, st.Type)
	case PadIndex:
		return fmt.Sprintf("PadIndex %d", st.Bytes)
	case AppendLength:
		return fmt.Sprintf("AppendLength %s %s", st.List, st.Type)
	case AppendList:
		return withPad(fmt.Sprintf("AppendList %s []%s", st.Name, st.Elem), st.Pad)
	case ReturnIndex:
		return "ReturnIndex"
	case LoadVar:
		return fmt.Sprintf("LoadVar %s %s", st.Name, st.Type)
	case AdvanceType:
		return fmt.Sprintf("AdvanceType %s", st.Type)
	case AdvanceBytes:
		return fmt.Sprintf("AdvanceBytes %d", st.N)
	case LoadList:
		return withPad(fmt.Sprintf("LoadList %s []%s len=%s", st.Name, st.Elem, st.Len), st.Pad)
	case ReturnStruct:
		return fmt.Sprintf("ReturnStruct %s{%s}", st.Struct, strings.Join(st.Fields, ", "))
	}
	return fmt.Sprintf("%T", st)
}

func withPad(s string, pad int) string {
	if pad > 0 {
		return fmt.Sprintf("%s pad=%d", s, pad)
	}
	return s
}
