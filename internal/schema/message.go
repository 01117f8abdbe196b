// Package schema holds the layout model consumed by the generator: messages,
// their wire items and their kinds.
package schema

// Kind tags a message as regular, event, error or request
type Kind interface {
	kind()
}

// Regular is a plain structure with no opcode
type Regular struct{}

// Event is a server-sent event
type Event struct {
	Opcode uint8
}

// Error is a protocol error
type Error struct {
	Opcode uint8
}

// Request is a client request, optionally answered by Reply
type Request struct {
	Opcode uint8
	Reply  *Message
}

func (Regular) kind() {}
func (Event) kind()   {}
func (Error) kind()   {}
func (Request) kind() {}

// Message describes one protocol entity prior to code generation
type Message struct {
	Name  string
	Brief string
	Desc  string
	Items []Item
	Kind  Kind
}

// Fields returns the items retained on the generated structure, in order
func (m Message) Fields() []Item {
	var out []Item
	for _, it := range m.Items {
		if Retained(it) {
			out = append(out, it)
		}
	}
	return out
}
