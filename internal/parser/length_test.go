package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/wiregen/internal/schema"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want schema.Length
	}{
		{"", schema.SlotLength{}},
		{"slot", schema.SlotLength{}},
		{" remaining ", schema.RemainingLength{}},
		{"32", schema.ConstLength{N: 32}},
		{"0x10", schema.ConstLength{N: 16}},
		{"count", schema.FieldLength{Name: "count"}},
		{"n + 1", schema.BinaryLength{Op: '+', Left: schema.FieldLength{Name: "n"}, Right: schema.ConstLength{N: 1}}},
		{"(n - 1)", schema.BinaryLength{Op: '-', Left: schema.FieldLength{Name: "n"}, Right: schema.ConstLength{N: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"n / 0", "n % 2", "1.5", `"x"`, "f(n)", "n << 2", "n +"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLength(in)
			assert.Error(t, err)
		})
	}
}

func TestLengthFields(t *testing.T) {
	l, err := ParseLength("(w*h)/bits")
	require.NoError(t, err)
	assert.Equal(t, []string{"w", "h", "bits"}, lengthFields(l))
}
