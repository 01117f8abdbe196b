package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	A, B byte
}

func (p *pair) WireSize() int { return 2 }

func (p *pair) AsBytes(b []byte) int {
	b[0], b[1] = p.A, p.B
	return 2
}

type ping struct{ pair }

func (*ping) RequestOpcode() uint8 { return 7 }
func (*ping) Reply() NoReply       { return NoReply{} }

var _ Request[NoReply] = (*ping)(nil)

func TestMarshal(t *testing.T) {
	assert.Equal(t, []byte{1, 2}, Marshal(&pair{A: 1, B: 2}))

	req := &ping{pair{A: 9}}
	assert.Equal(t, []byte{9, 0}, Marshal(req))
	assert.Equal(t, uint8(7), req.RequestOpcode())
}

func TestBoolByte(t *testing.T) {
	assert.Equal(t, byte(1), BoolByte(true))
	assert.Equal(t, byte(0), BoolByte(false))
}

func TestLengthError(t *testing.T) {
	err := &LengthError{Struct: "PolyLineRequest", List: "points", Len: 300, Max: 255}
	assert.EqualError(t, err, "wire: PolyLineRequest.points has 300 elements, length slot holds at most 255")
}
