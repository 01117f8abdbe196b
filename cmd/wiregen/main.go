package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/wiregen/internal/logging"
)

// app holds state shared by the subcommands
type app struct {
	logger   zerolog.Logger
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wiregen",
		Short: "Generate Go wire structures from protocol message descriptions",
		Long: `wiregen lowers protocol messages (fields, padding, length slots and lists)
into Go structures that size, encode and decode themselves.

Messages are read from YAML documents or from Go source annotated with
// @message comments and wire:"..." struct tags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = log.Logger
			if a.logLevel != "" {
				lvl, ok := logging.ParseLevel(a.logLevel)
				if !ok {
					return fmt.Errorf("unknown log level %q", a.logLevel)
				}
				a.logger = a.logger.Level(lvl)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level (trace, debug, info, warn, error, off); overrides "+logging.EnvLogLevel)

	root.AddCommand(newGenerateCmd(a), newInspectCmd(a))
	return root
}

func main() {
	logging.ConfigureRuntime()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
