// Package structure classifies messages by kind, names the generated
// structures and splits requests from their replies.
package structure

import (
	"fmt"

	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/schema"
)

// Derive is a capability advertised by every generated structure
type Derive string

const (
	Clone   Derive = "Clone"
	Debug   Derive = "Debug"
	Default Derive = "Default"
)

// DefaultDerives is the fixed capability set
var DefaultDerives = []Derive{Clone, Debug, Default}

// Method is an inherent operation of a generated structure.
// None are produced yet; the slot keeps the emitted unit shape stable.
type Method struct {
	Name   string
	Source string
}

// Trait is a kind-specific obligation of a generated structure
type Trait interface {
	trait()
}

// EventTrait marks an event with its opcode
type EventTrait struct {
	Opcode uint8
}

// ErrorTrait marks an error with its opcode
type ErrorTrait struct {
	Opcode uint8
}

// RequestTrait marks a request with its opcode and reply type.
// An empty Reply means the request has no reply.
type RequestTrait struct {
	Opcode uint8
	Reply  string
}

func (EventTrait) trait()   {}
func (ErrorTrait) trait()   {}
func (RequestTrait) trait() {}

// Structure is one generated structure
type Structure struct {
	Name        string
	Brief       string
	Desc        string
	Derives     []Derive
	Transparent bool // Exactly one item: wire form equals that item's form
	Items       []schema.Item
	Methods     []Method
	Traits      []Trait
	ASB         asb.Descriptor
}

// Fields returns the items that become struct members
func (s *Structure) Fields() []schema.Item {
	var out []schema.Item
	for _, it := range s.Items {
		if schema.Retained(it) {
			out = append(out, it)
		}
	}
	return out
}

// PopulateASB synthesizes the size expression and both instruction sequences
func (s *Structure) PopulateASB() error {
	d, err := asb.Populate(s.Name, s.Items)
	if err != nil {
		return err
	}
	s.ASB = d
	return nil
}

// Pair holds a structure and, for requests with a reply, the reply structure
type Pair struct {
	Main  Structure
	Reply *Structure
}

// All returns the structures of the pair in emission order
func (p *Pair) All() []*Structure {
	out := []*Structure{&p.Main}
	if p.Reply != nil {
		out = append(out, p.Reply)
	}
	return out
}

// Classify names msg according to its kind and attaches its trait.
// isReply marks msg as the reply body of a request.
func Classify(msg schema.Message, isReply bool) Pair {
	name := msg.Name
	var traits []Trait
	var reply *Structure

	if isReply {
		name += "Reply"
	} else {
		switch k := msg.Kind.(type) {
		case nil, schema.Regular:
		case schema.Event:
			name += "Event"
			traits = append(traits, EventTrait{Opcode: k.Opcode})
		case schema.Error:
			name += "Error"
			traits = append(traits, ErrorTrait{Opcode: k.Opcode})
		case schema.Request:
			name += "Request"
			t := RequestTrait{Opcode: k.Opcode}
			if k.Reply != nil {
				t.Reply = k.Reply.Name + "Reply"
				r := Classify(*k.Reply, true).Main
				reply = &r
			}
			traits = append(traits, t)
		default:
			panic(fmt.Sprintf("structure: unexpected kind %T", k))
		}
	}

	return Pair{
		Main: Structure{
			Name:        name,
			Brief:       msg.Brief,
			Desc:        msg.Desc,
			Derives:     append([]Derive(nil), DefaultDerives...),
			Transparent: len(msg.Items) == 1,
			Items:       msg.Items,
			Methods:     []Method{},
			Traits:      traits,
		},
		Reply: reply,
	}
}

// Lower classifies msg and populates every resulting structure.
// A defect in either structure aborts the whole pair.
func Lower(msg schema.Message) (Pair, error) {
	p := Classify(msg, false)
	for _, s := range p.All() {
		if err := s.PopulateASB(); err != nil {
			return Pair{}, fmt.Errorf("lower %s: %w", msg.Name, err)
		}
	}
	return p, nil
}
