package parser

import (
	"errors"
	"fmt"

	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/codegen"
	"github.com/alexhholmes/wiregen/internal/schema"
)

// ErrInvalid is returned for descriptions that cannot be turned into messages
var ErrInvalid = errors.New("invalid message")

// Schema is the result of parsing one input
type Schema struct {
	Messages []schema.Message
	Types    *schema.TypeRegistry
}

type itemKind int

const (
	fieldItem itemKind = iota
	padItem
	lenSlotItem
	listItem
)

// itemSpec is one item as written by a frontend, before type resolution
type itemSpec struct {
	kind   itemKind
	name   string // Member name, or owning list for a length slot
	typ    string
	pad    int
	length string
}

// messageSpec is one message as written by a frontend
type messageSpec struct {
	name   string
	brief  string
	desc   string
	kind   string
	opcode int
	items  []itemSpec
	reply  *messageSpec
}

// builder resolves frontend specs into schema messages.
// Regular messages with a fixed size are registered as they are built, so
// later messages can embed them.
type builder struct {
	reg *schema.TypeRegistry
}

func invalid(msg string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, msg, fmt.Sprintf(format, args...))
}

func (b *builder) build(specs []messageSpec) (*Schema, error) {
	out := &Schema{Types: b.reg}
	seen := make(map[string]bool, len(specs))
	for _, ms := range specs {
		if seen[ms.name] {
			return nil, invalid(ms.name, "declared twice")
		}
		seen[ms.name] = true

		msg, err := b.message(ms)
		if err != nil {
			return nil, err
		}
		out.Messages = append(out.Messages, msg)
	}
	return out, nil
}

func (b *builder) message(ms messageSpec) (schema.Message, error) {
	if ms.name == "" {
		return schema.Message{}, invalid("<unnamed>", "missing name")
	}

	kind, err := messageKind(ms.kind, ms.opcode)
	if err != nil {
		return schema.Message{}, invalid(ms.name, "%v", err)
	}
	if ms.opcode < 0 || ms.opcode > 255 {
		return schema.Message{}, invalid(ms.name, "opcode %d does not fit in a byte", ms.opcode)
	}

	items, err := b.items(ms.name, ms.items)
	if err != nil {
		return schema.Message{}, err
	}

	msg := schema.Message{
		Name:  ms.name,
		Brief: ms.brief,
		Desc:  ms.desc,
		Items: items,
		Kind:  kind,
	}

	if ms.reply != nil {
		req, ok := kind.(schema.Request)
		if !ok {
			return schema.Message{}, invalid(ms.name, "only requests have replies")
		}
		reply := *ms.reply
		if reply.name == "" {
			reply.name = ms.name
		}
		reply.kind = "reply"
		replyMsg, err := b.message(reply)
		if err != nil {
			return schema.Message{}, err
		}
		req.Reply = &replyMsg
		msg.Kind = req
	}

	if ms.kind == "" || ms.kind == "regular" {
		if _, exists := b.reg.Lookup(ms.name); !exists {
			if size, fixed := asb.Size(items).Fixed(); fixed {
				b.reg.Register(ms.name, size)
			}
		}
	}

	return msg, nil
}

func (b *builder) items(owner string, specs []itemSpec) ([]schema.Item, error) {
	items := make([]schema.Item, 0, len(specs))
	fields := make(map[string]schema.Type, len(specs))
	members := make(map[string]bool, len(specs))
	goNames := make(map[string]string, len(specs)) // Go field name → member
	slots := make(map[string]bool, len(specs))

	// member registers a Field or List name, rejecting names that end up as
	// the same Go field
	member := func(where, name string) error {
		if members[name] {
			return invalid(owner, "%s: duplicate member", where)
		}
		goName := codegen.FieldName(name)
		if prev, ok := goNames[goName]; ok {
			return invalid(owner, "%s: Go field %s already used by member %s", where, goName, prev)
		}
		members[name] = true
		goNames[goName] = name
		return nil
	}

	for i, spec := range specs {
		where := fmt.Sprintf("item %d", i)
		if spec.name != "" {
			where = fmt.Sprintf("item %d (%s)", i, spec.name)
		}

		switch spec.kind {
		case fieldItem:
			if spec.name == "" {
				return nil, invalid(owner, "%s: field without name", where)
			}
			t, err := b.reg.Resolve(spec.typ)
			if err != nil {
				return nil, invalid(owner, "%s: %v", where, err)
			}
			if err := member(where, spec.name); err != nil {
				return nil, err
			}
			fields[spec.name] = t
			items = append(items, schema.Field{Name: spec.name, Type: t})

		case padItem:
			if spec.pad <= 0 {
				return nil, invalid(owner, "%s: padding must be positive, got %d", where, spec.pad)
			}
			items = append(items, schema.Padding{Bytes: spec.pad})

		case lenSlotItem:
			if spec.name == "" {
				return nil, invalid(owner, "%s: length slot without list", where)
			}
			t, err := b.reg.Resolve(spec.typ)
			if err != nil {
				return nil, invalid(owner, "%s: %v", where, err)
			}
			if !t.IsInteger() {
				return nil, invalid(owner, "%s: length slot type %s is not an integer", where, t)
			}
			if slots[spec.name] {
				return nil, invalid(owner, "%s: list %s already has a length slot", where, spec.name)
			}
			slots[spec.name] = true
			items = append(items, schema.LenSlot{Type: t, List: spec.name})

		case listItem:
			if spec.name == "" {
				return nil, invalid(owner, "%s: list without name", where)
			}
			elem, err := b.reg.Resolve(spec.typ)
			if err != nil {
				return nil, invalid(owner, "%s: %v", where, err)
			}
			if elem.Size <= 0 {
				return nil, invalid(owner, "%s: element type %s has no size", where, elem)
			}
			length, err := ParseLength(spec.length)
			if err != nil {
				return nil, invalid(owner, "%s: %v", where, err)
			}
			for _, ref := range lengthFields(length) {
				t, ok := fields[ref]
				if !ok {
					return nil, invalid(owner, "%s: length refers to unknown or later field %s", where, ref)
				}
				if !t.IsInteger() {
					return nil, invalid(owner, "%s: length field %s is not an integer", where, ref)
				}
			}
			if _, ok := length.(schema.RemainingLength); ok && i != len(specs)-1 {
				return nil, invalid(owner, "%s: remaining length must be the last item", where)
			}
			if spec.pad < 0 {
				return nil, invalid(owner, "%s: negative trailing padding", where)
			}
			if err := member(where, spec.name); err != nil {
				return nil, err
			}
			items = append(items, schema.List{Name: spec.name, Elem: elem, Length: length, Pad: spec.pad})
		}
	}

	return items, nil
}
