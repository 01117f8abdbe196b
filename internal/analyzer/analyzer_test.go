package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/wiregen/internal/schema"
	"github.com/alexhholmes/wiregen/internal/structure"
)

var (
	u8  = schema.Primitive("uint8")
	u16 = schema.Primitive("uint16")
	u32 = schema.Primitive("uint32")
)

func lower(t *testing.T, items ...schema.Item) *structure.Structure {
	t.Helper()
	p, err := structure.Lower(schema.Message{Name: "Page", Items: items})
	require.NoError(t, err)
	return &p.Main
}

func TestAnalyze_SimpleFixed(t *testing.T) {
	l := Analyze(lower(t,
		schema.Field{Name: "A", Type: u32},
		schema.Padding{Bytes: 4},
		schema.Field{Name: "B", Type: u16},
	))

	assert.True(t, l.IsValid(), "warnings: %v", l.Warnings)
	assert.True(t, l.Fixed)
	assert.Equal(t, 10, l.FixedSize)
	require.Len(t, l.Regions, 3)

	assert.Equal(t, Region{Kind: FixedRegion, Name: "A", Type: u32, Start: 0, Boundary: 4}, l.Regions[0])
	assert.Equal(t, Region{Kind: PaddingRegion, Start: 4, Boundary: 8}, l.Regions[1])
	assert.Equal(t, Region{Kind: FixedRegion, Name: "B", Type: u16, Start: 8, Boundary: 10}, l.Regions[2])
}

func TestAnalyze_DynamicAfterList(t *testing.T) {
	l := Analyze(lower(t,
		schema.LenSlot{Type: u16, List: "names"},
		schema.Padding{Bytes: 22},
		schema.List{Name: "names", Elem: u32, Length: schema.SlotLength{}},
		schema.Field{Name: "tail", Type: u8},
	))

	assert.False(t, l.Fixed)
	assert.Equal(t, 24, l.FixedSize)
	require.Len(t, l.Regions, 4)

	assert.Equal(t, Region{Kind: SlotRegion, Name: "names", Type: u16, Start: 0, Boundary: 2}, l.Regions[0])
	assert.Equal(t, 24, l.Regions[2].Start)
	assert.Equal(t, -1, l.Regions[2].Boundary)
	assert.Equal(t, -1, l.Regions[3].Start, "offsets are unknown after a list")

	assert.Equal(t, "list     names []uint32 [24, ...)", l.Regions[2].String())
	assert.Equal(t, "field    tail uint8 dynamic", l.Regions[3].String())
	assert.Equal(t, "pad      [2, 24)", l.Regions[1].String())
}

func TestAnalyze_Warnings(t *testing.T) {
	l := Analyze(lower(t,
		schema.Field{Name: "a", Type: u8},
		schema.Field{Name: "b", Type: u32},
		schema.LenSlot{Type: u8, List: "ghost"},
	))

	assert.False(t, l.IsValid())
	assert.Equal(t, []string{
		"misaligned: field b at offset 1",
		"unused length slot for ghost",
	}, l.Warnings)
}

func TestRegionKindString(t *testing.T) {
	assert.Equal(t, "slot", SlotRegion.String())
	assert.Equal(t, "unknown", RegionKind(42).String())
}
