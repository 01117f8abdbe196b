// Package wire holds the small runtime that generated structures depend on.
package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is returned by generated decoders when the input ends
	// before the structure does.
	ErrShortBuffer = errors.New("wire: short buffer")

	// ErrInvalidLength is returned by generated decoders when a list length
	// computed from decoded fields divides by zero.
	ErrInvalidLength = errors.New("wire: invalid list length")
)

// LengthError is the panic value of AsBytes when a list holds more elements
// than its length slot can count.
type LengthError struct {
	Struct string
	List   string
	Len    int
	Max    uint64
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("wire: %s.%s has %d elements, length slot holds at most %d", e.Struct, e.List, e.Len, e.Max)
}

// Message is implemented by every generated structure
type Message interface {
	WireSize() int
	AsBytes(b []byte) int
}

// Event is a message sent by the server without a request
type Event interface {
	Message
	EventOpcode() uint8
}

// Error is a message reporting a failed request
type Error interface {
	Message
	ErrorOpcode() uint8
}

// Request is a message sent by the client. R is the reply structure,
// or NoReply when the server does not answer.
type Request[R any] interface {
	Message
	RequestOpcode() uint8
	Reply() R
}

// NoReply is the reply type of requests the server never answers
type NoReply struct{}

// Marshal encodes m into a newly allocated buffer of exactly m.WireSize() bytes
func Marshal(m Message) []byte {
	b := make([]byte, m.WireSize())
	n := m.AsBytes(b)
	return b[:n]
}

// BoolByte encodes a bool as a single byte
func BoolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
