package main

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/wiregen/internal/config"
	"github.com/alexhholmes/wiregen/internal/generate"
)

const defaultConfigFile = "wiregen.toml"

type generateFlags struct {
	config      string
	pkg         string
	output      string
	endian      string
	runtime     string
	unusedSlots string
	workers     int
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [inputs...]",
		Short: "Generate Go code for every message in the inputs",
		Long: `Generate reads wiregen.toml (or the file given by --config), adds any
inputs named on the command line, and writes one Go file holding every
generated structure. Flags override the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}
			return generate.Run(cmd.Context(), cfg, a.logger, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "config file (default "+defaultConfigFile+" when present)")
	flags.StringVarP(&f.pkg, "package", "p", "", "package name of the generated file (default: output directory name)")
	flags.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&f.endian, "endian", "", "byte order: little or big")
	flags.StringVar(&f.runtime, "runtime", "", "import path of the wire runtime package")
	flags.StringVar(&f.unusedSlots, "unused-slots", "", "unused length slots: warn, error or ignore")
	flags.IntVar(&f.workers, "workers", 0, "messages lowered in parallel")

	return cmd
}

// resolve merges the config file, flags and positional inputs
func (f *generateFlags) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()

	path := f.config
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, err
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("package") {
		cfg.Package = f.pkg
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("endian") {
		cfg.Endian = f.endian
	}
	if flags.Changed("runtime") {
		cfg.RuntimeImport = f.runtime
	}
	if flags.Changed("unused-slots") {
		cfg.UnusedSlots = config.UnusedSlotPolicy(f.unusedSlots)
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	cfg.Inputs = append(cfg.Inputs, args...)

	if cfg.Package == "" && cfg.Output != "" {
		abs, err := filepath.Abs(cfg.Output)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve output: %w", err)
		}
		if name := filepath.Base(filepath.Dir(abs)); token.IsIdentifier(name) {
			cfg.Package = name
		}
	}

	return cfg, nil
}
