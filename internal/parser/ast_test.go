package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/wiregen/internal/schema"
)

func TestParseFile(t *testing.T) {
	s, err := ParseFile("testdata/simple.go")
	require.NoError(t, err)

	// Point, GetInputFocus and Expose. The reply is folded into its request
	// and IgnoredType has no @message annotation.
	require.Len(t, s.Messages, 3)

	window := schema.Type{Name: "Window", Underlying: "uint32", Size: 4}
	i16 := schema.Primitive("int16")
	point := schema.Type{Name: "Point", Size: 4}

	assert.Equal(t, schema.Message{
		Name:  "Point",
		Brief: "is a location on screen.",
		Items: []schema.Item{
			schema.Field{Name: "X", Type: i16},
			schema.Field{Name: "Y", Type: i16},
		},
		Kind: schema.Regular{},
	}, s.Messages[0])

	size, ok := s.Types.Lookup("Point")
	require.True(t, ok, "fixed-size regular messages are registered")
	assert.Equal(t, 4, size)

	focus := s.Messages[1]
	assert.Equal(t, "GetInputFocus", focus.Name)
	assert.Equal(t, []schema.Item{schema.Padding{Bytes: 1}}, focus.Items)
	req, ok := focus.Kind.(schema.Request)
	require.True(t, ok)
	assert.Equal(t, uint8(43), req.Opcode)
	require.NotNil(t, req.Reply)
	assert.Equal(t, "GetInputFocus", req.Reply.Name)
	assert.Equal(t, "carries the focused window.", req.Reply.Brief)
	assert.Equal(t, []schema.Item{schema.Field{Name: "Focus", Type: window}}, req.Reply.Items)

	expose := s.Messages[2]
	assert.Equal(t, schema.Event{Opcode: 12}, expose.Kind)
	assert.Equal(t, "reports damaged regions of a window.", expose.Brief)
	assert.Equal(t, "Regions arrive in no particular order.", expose.Desc)
	assert.Equal(t, []schema.Item{
		schema.Field{Name: "Window", Type: window},
		schema.LenSlot{Type: schema.Primitive("uint16"), List: "Rects"},
		schema.Padding{Bytes: 2},
		schema.List{Name: "Rects", Elem: point, Length: schema.SlotLength{}, Pad: 2},
	}, expose.Items)
}

func TestParseFileInvalid(t *testing.T) {
	_, err := ParseFile("testdata/invalid.go")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "Width")
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errMsg string
	}{
		{
			name: "unused reply",
			source: `package p
// @message kind=reply
type Orphan struct{ A uint8 }`,
			errMsg: "not referenced",
		},
		{
			name: "missing reply",
			source: `package p
// @message kind=request opcode=1 reply=Nope
type Ask struct{ A uint8 }`,
			errMsg: "not a kind=reply struct",
		},
		{
			name: "blank field without tag",
			source: `package p
// @message
type A struct{ _ uint8 }`,
			errMsg: "blank field",
		},
		{
			name: "tag on scalar",
			source: `package p
// @message
type A struct{ B uint8 ` + "`wire:\"pad=1\"`" + ` }`,
			errMsg: "take no wire tag",
		},
		{
			name: "pointer field",
			source: `package p
// @message
type A struct{ B *uint8 }`,
			errMsg: "unknown type",
		},
		{
			name: "float length slot",
			source: `package p
// @message
type A struct {
	_ float32 ` + "`wire:\"len=C\"`" + `
	C []byte
}`,
			errMsg: "not an integer",
		},
		{
			name: "malformed annotation",
			source: `package p
// @message kind=event
type A struct{ B uint8 }`,
			errMsg: "requires opcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.go")
			require.NoError(t, os.WriteFile(path, []byte(tt.source), 0o644))

			_, err := ParseFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadDispatch(t *testing.T) {
	s, err := Load("testdata/simple.go")
	require.NoError(t, err)
	assert.Len(t, s.Messages, 3)

	_, err = Load("protocol.json")
	assert.ErrorContains(t, err, "unsupported input")
}
