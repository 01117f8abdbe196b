package asb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/wiregen/internal/schema"
)

func TestSize(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "A", Type: u32},
		schema.Padding{Bytes: 4},
		schema.LenSlot{Type: u16, List: "Items"},
		schema.List{Name: "Items", Elem: u32, Length: schema.SlotLength{}, Pad: 2},
	}

	sum := Size(items)
	assert.Equal(t, Sum{
		SizeofField{Name: "A", Type: u32},
		Bytes{N: 4},
		SizeofType{Type: u16},
		ListTimesSize{Name: "Items", Elem: u32, Pad: 2},
	}, sum)

	_, fixed := sum.Fixed()
	assert.False(t, fixed)
	assert.Equal(t, 4+4+2+3*4+2, sum.Eval(map[string]int{"Items": 3}))
	assert.Equal(t, "sizeof(A) + 4 + sizeof(uint16) + len(Items)*4+2", sum.String())
}

// [a: 4 bytes][pad: 4 bytes][b: 2 bytes]
func TestFixedLayout(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "A", Type: u32},
		schema.Padding{Bytes: 4},
		schema.Field{Name: "B", Type: u16},
	}

	d, err := Populate("Fixed", items)
	require.NoError(t, err)

	size, fixed := d.Size.Fixed()
	require.True(t, fixed)
	assert.Equal(t, 10, size)

	buf, n := evalSerialize(d.Serialize, map[string]any{
		"A": uint64(0xFFFFFFFF),
		"B": uint64(0xFFFF),
	})
	assert.Equal(t, 10, n)
	assert.Len(t, buf, 10)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[4:8])
}

func TestSerializeStatements(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "A", Type: u8},
		schema.Padding{Bytes: 3},
		schema.LenSlot{Type: u16, List: "Items"},
		schema.List{Name: "Items", Elem: u32, Length: schema.SlotLength{}, Pad: 1},
	}

	assert.Equal(t, []Stmt{
		CreateIndex{},
		AppendField{Name: "A", Type: u8},
		PadIndex{Bytes: 3},
		AppendLength{List: "Items", Type: u16},
		AppendList{Name: "Items", Elem: u32, Pad: 1},
		ReturnIndex{},
	}, Serialize(items))
}

// u16 length slot followed by a u32 list of length 3
func TestDeserializeLengthSlot(t *testing.T) {
	items := []schema.Item{
		schema.LenSlot{Type: u16, List: "items"},
		schema.List{Name: "items", Elem: u32, Length: schema.SlotLength{}},
	}

	stmts, unused, err := Deserialize("Holder", items)
	require.NoError(t, err)
	assert.Empty(t, unused)
	assert.Equal(t, []Stmt{
		CreateIndex{},
		LoadVar{Name: "len0", Type: u16},
		AdvanceType{Type: u16},
		LoadList{Name: "items", Elem: u32, Len: LenVar{Name: "len0"}},
		ReturnStruct{Struct: "Holder", Fields: []string{"items"}},
	}, stmts)

	buf, written := evalSerialize(Serialize(items), map[string]any{
		"items": []uint64{7, 8, 9},
	})
	assert.Equal(t, 14, written)
	assert.Equal(t, []byte{3, 0}, buf[:2])

	rec, index, err := evalDeserialize(stmts, buf)
	require.NoError(t, err)
	assert.Equal(t, 14, index)
	assert.Equal(t, []uint64{7, 8, 9}, rec["items"])
	assert.Len(t, rec, 1)
	assert.NotContains(t, rec, "len0")
}

func TestDeserializeMissingSlot(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "A", Type: u32},
		schema.List{Name: "count", Elem: u8, Length: schema.SlotLength{}},
	}

	stmts, _, err := Deserialize("Broken", items)
	require.Error(t, err)
	assert.Nil(t, stmts)

	var defect *DefectError
	require.ErrorAs(t, err, &defect)
	assert.Equal(t, "count", defect.List)
	assert.Equal(t, "Broken", defect.Struct)
	assert.Contains(t, err.Error(), `"count"`)

	_, err = Populate("Broken", items)
	require.ErrorAs(t, err, &defect)
}

func TestDeserializeSlotAfterList(t *testing.T) {
	items := []schema.Item{
		schema.List{Name: "Items", Elem: u8, Length: schema.SlotLength{}},
		schema.LenSlot{Type: u8, List: "Items"},
	}

	_, _, err := Deserialize("Misordered", items)
	var defect *DefectError
	require.ErrorAs(t, err, &defect)
}

func TestDeserializeDuplicateSlot(t *testing.T) {
	items := []schema.Item{
		schema.LenSlot{Type: u8, List: "data"},
		schema.LenSlot{Type: u16, List: "data"},
		schema.List{Name: "data", Elem: u8, Length: schema.SlotLength{}},
	}

	stmts, unused, err := Deserialize("Dup", items)
	assert.Nil(t, stmts)
	assert.Nil(t, unused)

	var defect *DefectError
	require.ErrorAs(t, err, &defect)
	assert.True(t, defect.Duplicate)
	assert.Equal(t, "data", defect.List)
	assert.EqualError(t, err, `Dup: list "data" has more than one length slot`)

	// A fresh slot after the list consumed the first one is merely unused
	late := []schema.Item{
		schema.LenSlot{Type: u8, List: "data"},
		schema.List{Name: "data", Elem: u8, Length: schema.SlotLength{}},
		schema.LenSlot{Type: u8, List: "data"},
	}
	d, err := Populate("Late", late)
	require.NoError(t, err)
	assert.Equal(t, []string{"data"}, d.UnusedSlots)
}

func TestDeserializeFreshTemporaries(t *testing.T) {
	items := []schema.Item{
		schema.LenSlot{Type: u8, List: "A"},
		schema.LenSlot{Type: u16, List: "B"},
		schema.List{Name: "A", Elem: u8, Length: schema.SlotLength{}},
		schema.List{Name: "B", Elem: u16, Length: schema.SlotLength{}},
	}

	stmts, _, err := Deserialize("Two", items)
	require.NoError(t, err)
	assert.Equal(t, LoadVar{Name: "len0", Type: u8}, stmts[1])
	assert.Equal(t, LoadVar{Name: "len1", Type: u16}, stmts[3])
	assert.Equal(t, LenVar{Name: "len0"}, stmts[5].(LoadList).Len)
	assert.Equal(t, LenVar{Name: "len1"}, stmts[6].(LoadList).Len)

	// Each call gets its own counter
	again, _, err := Deserialize("Two", items)
	require.NoError(t, err)
	assert.Equal(t, stmts, again)
}

func TestDeserializeTemporariesAvoidMembers(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "len0", Type: u8},
		schema.LenSlot{Type: u8, List: "A"},
		schema.List{Name: "A", Elem: u8, Length: schema.SlotLength{}},
	}

	stmts, _, err := Deserialize("Clash", items)
	require.NoError(t, err)
	assert.Equal(t, LoadVar{Name: "len1", Type: u8}, stmts[3])
	assert.Equal(t, LenVar{Name: "len1"}, stmts[5].(LoadList).Len)
}

func TestDeserializeUnusedSlot(t *testing.T) {
	items := []schema.Item{
		schema.LenSlot{Type: u8, List: "Zeta"},
		schema.LenSlot{Type: u8, List: "Alpha"},
		schema.Field{Name: "A", Type: u32},
	}

	d, err := Populate("Leftover", items)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Zeta"}, d.UnusedSlots)
}

func TestDeserializeExpressionLengths(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "Width", Type: u16},
		schema.Field{Name: "Height", Type: u16},
		schema.List{
			Name: "Pixels",
			Elem: u8,
			Length: schema.BinaryLength{
				Op:    '*',
				Left:  schema.FieldLength{Name: "Width"},
				Right: schema.FieldLength{Name: "Height"},
			},
		},
		schema.List{Name: "Fixed", Elem: u16, Length: schema.ConstLength{N: 2}},
		schema.List{Name: "Rest", Elem: u32, Length: schema.RemainingLength{}},
	}

	stmts, unused, err := Deserialize("Image", items)
	require.NoError(t, err)
	assert.Empty(t, unused)

	var loads []LoadList
	for _, st := range stmts {
		if l, ok := st.(LoadList); ok {
			loads = append(loads, l)
		}
	}
	require.Len(t, loads, 3)
	assert.Equal(t, LenBinary{Op: '*', Left: LenField{Name: "Width"}, Right: LenField{Name: "Height"}}, loads[0].Len)
	assert.Equal(t, LenConst{N: 2}, loads[1].Len)
	assert.Equal(t, LenRemaining{Elem: u32}, loads[2].Len)

	rec := map[string]any{
		"Width":  uint64(3),
		"Height": uint64(2),
		"Pixels": []uint64{1, 2, 3, 4, 5, 6},
		"Fixed":  []uint64{10, 20},
		"Rest":   []uint64{100, 200, 300},
	}
	buf, written := evalSerialize(Serialize(items), rec)

	got, index, err := evalDeserialize(stmts, buf)
	require.NoError(t, err)
	assert.Equal(t, written, index)
	assert.Equal(t, rec, got)
}

func TestLengthSlotFidelity(t *testing.T) {
	items := []schema.Item{
		schema.LenSlot{Type: u8, List: "Items"},
		schema.List{Name: "Items", Elem: u16, Length: schema.SlotLength{}},
	}
	d, err := Populate("Fidelity", items)
	require.NoError(t, err)

	list := []uint64{1, 2}
	rec := map[string]any{"Items": list}
	rec["Items"] = append(list, 3, 4, 5)

	buf, _ := evalSerialize(d.Serialize, rec)
	assert.Equal(t, byte(5), buf[0])

	got, _, err := evalDeserialize(d.Deserialize, buf)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, got["Items"])
}

func TestDeserializeShortInput(t *testing.T) {
	items := []schema.Item{
		schema.Field{Name: "A", Type: u32},
		schema.Padding{Bytes: 4},
	}
	d, err := Populate("Short", items)
	require.NoError(t, err)

	_, _, err = evalDeserialize(d.Deserialize, []byte{1, 2, 3})
	require.ErrorIs(t, err, errShort)

	_, _, err = evalDeserialize(d.Deserialize, []byte{1, 2, 3, 4, 0})
	require.ErrorIs(t, err, errShort)
}

// randomItems builds a well-formed scalar layout
func randomItems(r *rand.Rand) []schema.Item {
	scalars := []schema.Type{u8, u16, u32, u64}
	var items []schema.Item
	n := 1 + r.Intn(8)
	for i := 0; i < n; i++ {
		switch r.Intn(4) {
		case 0:
			items = append(items, schema.Field{Name: fieldName("F", i), Type: scalars[r.Intn(4)]})
		case 1:
			items = append(items, schema.Padding{Bytes: 1 + r.Intn(4)})
		case 2:
			name := fieldName("L", i)
			items = append(items,
				schema.LenSlot{Type: scalars[r.Intn(3)], List: name},
				schema.List{Name: name, Elem: scalars[r.Intn(4)], Length: schema.SlotLength{}, Pad: r.Intn(4)},
			)
		case 3:
			items = append(items, schema.List{
				Name:   fieldName("C", i),
				Elem:   scalars[r.Intn(4)],
				Length: schema.ConstLength{N: r.Intn(4)},
				Pad:    r.Intn(3),
			})
		}
	}
	return items
}

func fieldName(prefix string, i int) string {
	return prefix + string(rune('a'+i))
}

func randomRecord(r *rand.Rand, items []schema.Item) map[string]any {
	mask := func(size int) uint64 {
		if size == 8 {
			return ^uint64(0)
		}
		return 1<<(8*size) - 1
	}
	rec := make(map[string]any)
	for _, it := range items {
		switch it := it.(type) {
		case schema.Field:
			rec[it.Name] = r.Uint64() & mask(it.Type.Size)
		case schema.List:
			n := r.Intn(6)
			if c, ok := it.Length.(schema.ConstLength); ok {
				n = c.N
			}
			l := make([]uint64, n)
			for i := range l {
				l[i] = r.Uint64() & mask(it.Elem.Size)
			}
			rec[it.Name] = l
		}
	}
	return rec
}

func TestRoundTripProperty(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		items := randomItems(r)
		d, err := Populate("Random", items)
		require.NoError(t, err)
		require.Empty(t, d.UnusedSlots)

		rec := randomRecord(r, items)
		buf, written := evalSerialize(d.Serialize, rec)
		require.Len(t, buf, written)

		lens := make(map[string]int)
		for k, v := range rec {
			if l, ok := v.([]uint64); ok {
				lens[k] = len(l)
			}
		}
		require.Equal(t, d.Size.Eval(lens), written)
		if size, fixed := d.Size.Fixed(); fixed {
			require.Equal(t, size, written)
		}

		got, index, err := evalDeserialize(d.Deserialize, buf)
		require.NoError(t, err)
		require.Equal(t, written, index)
		require.Equal(t, rec, got)

		// Padding regions are always zero
		offset := 0
		for _, it := range items {
			switch it := it.(type) {
			case schema.Field:
				offset += it.Type.Size
			case schema.LenSlot:
				offset += it.Type.Size
			case schema.Padding:
				require.Equal(t, make([]byte, it.Bytes), buf[offset:offset+it.Bytes])
				offset += it.Bytes
			case schema.List:
				offset += len(rec[it.Name].([]uint64)) * it.Elem.Size
				require.Equal(t, make([]byte, it.Pad), buf[offset:offset+it.Pad])
				offset += it.Pad
			}
		}
	}
}
