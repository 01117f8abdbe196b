// Package config loads wiregen.toml.
package config

import (
	"fmt"
	"go/token"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alexhholmes/wiregen/internal/codegen"
)

// UnusedSlotPolicy decides what happens to length slots no list consumes
type UnusedSlotPolicy string

const (
	UnusedSlotsWarn   UnusedSlotPolicy = "warn"
	UnusedSlotsError  UnusedSlotPolicy = "error"
	UnusedSlotsIgnore UnusedSlotPolicy = "ignore"
)

// Config drives one generation run
type Config struct {
	Package       string           // Package clause of the generated file
	Output        string           // Output path, empty for stdout
	Inputs        []string         // YAML or Go protocol descriptions
	Endian        string           // "little" or "big"
	RuntimeImport string           // Import path of the wire runtime
	UnusedSlots   UnusedSlotPolicy // Unused length slot handling
	Workers       int              // Messages lowered in parallel
}

type fileConfig struct {
	Package       string   `toml:"package"`
	Output        string   `toml:"output"`
	Inputs        []string `toml:"inputs"`
	Endian        string   `toml:"endian"`
	RuntimeImport string   `toml:"runtime_import"`
	UnusedSlots   string   `toml:"unused_slots"`
	Workers       int      `toml:"workers"`
}

func Default() Config {
	return Config{
		Endian:        "little",
		RuntimeImport: codegen.DefaultRuntime,
		UnusedSlots:   UnusedSlotsWarn,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Load reads path over the defaults. Relative inputs and output are
// resolved against the directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	dir := filepath.Dir(path)

	if meta.IsDefined("package") {
		cfg.Package = strings.TrimSpace(raw.Package)
	}

	if meta.IsDefined("output") {
		cfg.Output = resolve(dir, strings.TrimSpace(raw.Output))
	}

	if meta.IsDefined("inputs") {
		cfg.Inputs = make([]string, 0, len(raw.Inputs))
		for _, in := range raw.Inputs {
			if in = strings.TrimSpace(in); in != "" {
				cfg.Inputs = append(cfg.Inputs, resolve(dir, in))
			}
		}
	}

	if meta.IsDefined("endian") {
		cfg.Endian = strings.ToLower(strings.TrimSpace(raw.Endian))
	}

	if meta.IsDefined("runtime_import") {
		cfg.RuntimeImport = strings.TrimSpace(raw.RuntimeImport)
	}

	if meta.IsDefined("unused_slots") {
		cfg.UnusedSlots = UnusedSlotPolicy(strings.ToLower(strings.TrimSpace(raw.UnusedSlots)))
	}

	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}

	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks that cfg describes a runnable generation
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("no inputs")
	}
	if c.Endian != "little" && c.Endian != "big" {
		return fmt.Errorf("endian must be 'little' or 'big', got: %s", c.Endian)
	}
	if c.RuntimeImport == "" {
		return fmt.Errorf("runtime_import is empty")
	}
	switch c.UnusedSlots {
	case UnusedSlotsWarn, UnusedSlotsError, UnusedSlotsIgnore:
	default:
		return fmt.Errorf("unused_slots must be warn, error or ignore, got: %s", c.UnusedSlots)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got: %d", c.Workers)
	}
	return nil
}
