package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// yamlDocument is the on-disk form of a protocol description
//
//	types:
//	  aliases: {Window: uint32}
//	  structs: {Point: 4}
//	messages:
//	  - name: GetInputFocus
//	    kind: request
//	    opcode: 43
//	    items:
//	      - pad: 1
//	    reply:
//	      items:
//	        - {field: focus, type: Window}
type yamlDocument struct {
	Types struct {
		Aliases map[string]string `yaml:"aliases"`
		Structs map[string]int    `yaml:"structs"`
	} `yaml:"types"`
	Messages []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	Name   string       `yaml:"name"`
	Brief  string       `yaml:"brief"`
	Desc   string       `yaml:"desc"`
	Kind   string       `yaml:"kind"`
	Opcode int          `yaml:"opcode"`
	Items  []yamlItem   `yaml:"items"`
	Reply  *yamlMessage `yaml:"reply"`
}

// yamlItem is one item. Exactly one of field, lenslot or list names it;
// an item naming none of them is padding.
type yamlItem struct {
	Field   string `yaml:"field"`
	LenSlot string `yaml:"lenslot"`
	List    string `yaml:"list"`
	Type    string `yaml:"type"`
	Length  string `yaml:"length"`
	Pad     int    `yaml:"pad"`
}

// LoadYAML reads a YAML protocol description from path
func LoadYAML(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseYAML parses a YAML protocol description
func ParseYAML(data []byte) (*Schema, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	reg := schema.NewTypeRegistry()
	for alias, underlying := range doc.Types.Aliases {
		reg.RegisterAlias(alias, underlying)
	}
	for name, size := range doc.Types.Structs {
		if size <= 0 {
			return nil, fmt.Errorf("%w: %s: struct size must be positive, got %d", ErrInvalid, name, size)
		}
		reg.Register(name, size)
	}

	specs := make([]messageSpec, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		if m.Kind == "reply" {
			return nil, fmt.Errorf("%w: %s: replies are declared inside their request", ErrInvalid, m.Name)
		}
		ms, err := m.spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, ms)
	}

	b := &builder{reg: reg}
	return b.build(specs)
}

func (m yamlMessage) spec() (messageSpec, error) {
	ms := messageSpec{
		name:   m.Name,
		brief:  m.Brief,
		desc:   m.Desc,
		kind:   m.Kind,
		opcode: m.Opcode,
	}

	for i, it := range m.Items {
		spec, err := it.spec()
		if err != nil {
			return messageSpec{}, fmt.Errorf("%w: %s: item %d: %v", ErrInvalid, m.Name, i, err)
		}
		ms.items = append(ms.items, spec)
	}

	if m.Reply != nil {
		reply, err := m.Reply.spec()
		if err != nil {
			return messageSpec{}, err
		}
		ms.reply = &reply
	}
	return ms, nil
}

func (it yamlItem) spec() (itemSpec, error) {
	named := 0
	for _, n := range []string{it.Field, it.LenSlot, it.List} {
		if n != "" {
			named++
		}
	}
	if named > 1 {
		return itemSpec{}, fmt.Errorf("item sets more than one of field, lenslot and list")
	}

	switch {
	case it.Field != "":
		if it.Pad != 0 || it.Length != "" {
			return itemSpec{}, fmt.Errorf("field %s takes only a type", it.Field)
		}
		return itemSpec{kind: fieldItem, name: it.Field, typ: it.Type}, nil
	case it.LenSlot != "":
		if it.Pad != 0 || it.Length != "" {
			return itemSpec{}, fmt.Errorf("lenslot %s takes only a type", it.LenSlot)
		}
		return itemSpec{kind: lenSlotItem, name: it.LenSlot, typ: it.Type}, nil
	case it.List != "":
		return itemSpec{kind: listItem, name: it.List, typ: it.Type, pad: it.Pad, length: it.Length}, nil
	}

	if it.Type != "" || it.Length != "" {
		return itemSpec{}, fmt.Errorf("padding takes only pad")
	}
	return itemSpec{kind: padItem, pad: it.Pad}, nil
}
