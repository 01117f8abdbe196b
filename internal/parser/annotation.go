package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexhholmes/wiregen/internal/schema"
)

var (
	annotationRe = regexp.MustCompile(`^@message(?:\s+(.+))?$`)
	pairRe       = regexp.MustCompile(`(\w+)=([\w-]+)`)
)

// MessageAnnotation holds a parsed @message annotation
type MessageAnnotation struct {
	Kind   string // "regular", "event", "error", "request" or "reply"
	Opcode int
	Reply  string // Struct holding the reply body of a request
}

// ParseAnnotation parses @message annotation from comment text
//
// Expected format:
//
//	// @message
//	// @message kind=event opcode=12
//	// @message kind=request opcode=43 reply=GetInputFocus
//	// @message kind=reply
//
// Params are space-separated key=value pairs. Without params the message is
// regular.
func ParseAnnotation(comment string) (*MessageAnnotation, error) {
	matches := annotationRe.FindStringSubmatch(strings.TrimSpace(comment))
	if matches == nil {
		return nil, fmt.Errorf("no @message annotation found")
	}

	anno := &MessageAnnotation{Kind: "regular"}
	if matches[1] == "" {
		return anno, nil
	}

	opcodeSet := false
	for _, pair := range pairRe.FindAllStringSubmatch(matches[1], -1) {
		key, value := pair[1], pair[2]

		switch key {
		case "kind":
			switch value {
			case "regular", "event", "error", "request", "reply":
				anno.Kind = value
			default:
				return nil, fmt.Errorf("kind must be regular, event, error, request or reply, got: %s", value)
			}

		case "opcode":
			op, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid opcode: %s", value)
			}
			if op < 0 || op > 255 {
				return nil, fmt.Errorf("opcode must fit in a byte, got: %d", op)
			}
			anno.Opcode = op
			opcodeSet = true

		case "reply":
			anno.Reply = value

		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	switch anno.Kind {
	case "event", "error", "request":
		if !opcodeSet {
			return nil, fmt.Errorf("kind=%s requires opcode", anno.Kind)
		}
	default:
		if opcodeSet {
			return nil, fmt.Errorf("kind=%s takes no opcode", anno.Kind)
		}
	}
	if anno.Reply != "" && anno.Kind != "request" {
		return nil, fmt.Errorf("reply is only valid for requests")
	}

	return anno, nil
}

// FindAnnotation searches comment lines for @message annotation.
// Lines that carry @message but fail to parse are reported.
func FindAnnotation(comments []string) (*MessageAnnotation, bool, error) {
	for _, comment := range comments {
		if !strings.HasPrefix(comment, "@message") {
			continue
		}
		anno, err := ParseAnnotation(comment)
		if err != nil {
			return nil, true, err
		}
		return anno, true, nil
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @message kind=event" → "@message kind=event"
// "/* @message */" → "@message"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		return line
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		return line
	}

	return line
}

// messageKind maps an annotation or document kind to a schema kind.
// A reply body is regular; its owning request marks it.
func messageKind(kind string, opcode int) (schema.Kind, error) {
	op := uint8(opcode)
	switch kind {
	case "", "regular", "reply":
		return schema.Regular{}, nil
	case "event":
		return schema.Event{Opcode: op}, nil
	case "error":
		return schema.Error{Opcode: op}, nil
	case "request":
		return schema.Request{Opcode: op}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}
