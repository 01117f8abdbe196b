package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/wiregen/internal/analyzer"
	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/parser"
	"github.com/alexhholmes/wiregen/internal/structure"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the lowered structures, regions and instruction sequences of a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parser.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(s.Messages) == 0 {
				fmt.Fprintln(out, "No messages found")
				return nil
			}

			failed := 0
			for _, msg := range s.Messages {
				p, err := structure.Lower(msg)
				if err != nil {
					a.logger.Error().Err(err).Str("message", msg.Name).Msg("lowering failed")
					failed++
					continue
				}
				for _, st := range p.All() {
					printStructure(out, st)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d messages failed to lower", failed, len(s.Messages))
			}
			return nil
		},
	}
}

func printStructure(w io.Writer, s *structure.Structure) {
	l := analyzer.Analyze(s)

	var attrs []string
	for _, t := range s.Traits {
		attrs = append(attrs, describeTrait(t))
	}
	if l.Fixed {
		attrs = append(attrs, fmt.Sprintf("size=%d", l.FixedSize))
	} else {
		attrs = append(attrs, fmt.Sprintf("size=%s", s.ASB.Size), fmt.Sprintf("prefix=%d", l.FixedSize))
	}
	if s.Transparent {
		attrs = append(attrs, "transparent")
	}
	fmt.Fprintf(w, "\n%s (%s)\n", s.Name, strings.Join(attrs, ", "))

	fmt.Fprintln(w, "Regions:")
	for _, r := range l.Regions {
		fmt.Fprintf(w, "  %s\n", r)
	}

	fmt.Fprintln(w, "Serialize:")
	for _, st := range s.ASB.Serialize {
		fmt.Fprintf(w, "  %s\n", asb.Format(st))
	}

	fmt.Fprintln(w, "Deserialize:")
	for _, st := range s.ASB.Deserialize {
		fmt.Fprintf(w, "  %s\n", asb.Format(st))
	}

	for _, warn := range l.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

func describeTrait(t structure.Trait) string {
	switch t := t.(type) {
	case structure.EventTrait:
		return fmt.Sprintf("event opcode=%d", t.Opcode)
	case structure.ErrorTrait:
		return fmt.Sprintf("error opcode=%d", t.Opcode)
	case structure.RequestTrait:
		reply := t.Reply
		if reply == "" {
			reply = "none"
		}
		return fmt.Sprintf("request opcode=%d reply=%s", t.Opcode, reply)
	}
	return "unknown"
}
