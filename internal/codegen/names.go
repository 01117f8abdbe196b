package codegen

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Exported converts a schema member name into an exported Go identifier:
// "sequence_number" → "SequenceNumber", "x" → "X".
func Exported(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var out strings.Builder
	for _, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		out.WriteRune(unicode.ToUpper(r))
		out.WriteString(p[size:])
	}
	if out.Len() == 0 {
		return "X"
	}
	return out.String()
}

// generatedMethods are method names every structure may carry
var generatedMethods = map[string]bool{
	"Clone": true, "String": true, "WireSize": true, "AsBytes": true,
	"EventOpcode": true, "ErrorOpcode": true, "RequestOpcode": true, "Reply": true,
}

// FieldName returns the struct field holding a member. Names that would
// collide with a generated method get a trailing underscore: "string" → "String_".
func FieldName(name string) string {
	exp := Exported(name)
	if generatedMethods[exp] {
		exp += "_"
	}
	return exp
}

var tempRe = regexp.MustCompile(`^(len|count)\d+$`)

// names used by generated function bodies
var reservedLocals = map[string]bool{
	"b": true, "s": true, "c": true, "index": true, "n": true, "err": true,
	"v": true, "i": true, "elem": true,

	// Predeclared identifiers that generated code calls or names
	"append": true, "cap": true, "clear": true, "copy": true, "len": true,
	"make": true, "new": true, "min": true, "max": true, "panic": true,
	"bool": true, "byte": true, "int": true, "string": true, "error": true,
	"nil": true, "true": true, "false": true, "binary": true, "math": true,
	"wire": true, "fmt": true, "slices": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"float32": true, "float64": true,
}

// local converts a schema member name into the local variable that holds it
// while decoding. The result never collides with keywords, predeclared
// identifiers or the generator's own temporaries.
func local(name string) string {
	exp := Exported(name)
	r, size := utf8.DecodeRuneInString(exp)
	l := string(unicode.ToLower(r)) + exp[size:]
	if token.IsKeyword(l) || reservedLocals[l] || tempRe.MatchString(l) {
		l += "_"
	}
	return l
}
