// Package generate runs a whole generation: it loads inputs, lowers every
// message, emits the units and prints the output file.
package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alexhholmes/wiregen/internal/asb"
	"github.com/alexhholmes/wiregen/internal/codegen"
	"github.com/alexhholmes/wiregen/internal/config"
	"github.com/alexhholmes/wiregen/internal/parser"
	"github.com/alexhholmes/wiregen/internal/printer"
	"github.com/alexhholmes/wiregen/internal/schema"
	"github.com/alexhholmes/wiregen/internal/structure"
)

// Options controls lowering and emission
type Options struct {
	Endian      string
	Runtime     string
	UnusedSlots config.UnusedSlotPolicy
	Workers     int
	Logger      zerolog.Logger
}

// OptionsFromConfig copies the generation settings of cfg
func OptionsFromConfig(cfg config.Config, logger zerolog.Logger) Options {
	return Options{
		Endian:      cfg.Endian,
		Runtime:     cfg.RuntimeImport,
		UnusedSlots: cfg.UnusedSlots,
		Workers:     cfg.Workers,
		Logger:      logger,
	}
}

// Result is the lowering and emission of one message
type Result struct {
	Message schema.Message
	Pair    structure.Pair
	Units   []codegen.Unit // Main structure first, then the reply
}

// Lower lowers and emits msgs with at most opts.Workers in flight.
// Results keep the order of msgs. Every failing message is reported in the
// returned error; no results are returned when any message fails.
func Lower(ctx context.Context, msgs []schema.Message, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	gen := codegen.NewGenerator(opts.Endian, opts.Runtime)

	results := make([]Result, len(msgs))
	failures := make([]error, len(msgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, msg := range msgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := lowerOne(gen, msg, opts)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = res
			opts.Logger.Debug().Str("message", msg.Name).Int("structures", len(res.Units)).Msg("lowered")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	errs := new(multierror.Error)
	for _, err := range failures {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := checkNames(results); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return results, nil
}

func lowerOne(gen *codegen.Generator, msg schema.Message, opts Options) (Result, error) {
	p, err := structure.Lower(msg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Message: msg, Pair: p}
	for _, s := range p.All() {
		if len(s.ASB.UnusedSlots) > 0 {
			switch opts.UnusedSlots {
			case config.UnusedSlotsError:
				return Result{}, fmt.Errorf("lower %s: %w", msg.Name,
					&asb.UnusedSlotError{Struct: s.Name, Lists: s.ASB.UnusedSlots})
			case config.UnusedSlotsIgnore:
			default:
				opts.Logger.Warn().
					Str("struct", s.Name).
					Strs("lists", s.ASB.UnusedSlots).
					Msg("length slot never consumed")
			}
		}
		res.Units = append(res.Units, gen.Emit(s))
	}
	return res, nil
}

// checkNames rejects two structures generated under one name
func checkNames(results []Result) error {
	seen := make(map[string]string)
	errs := new(multierror.Error)
	for _, r := range results {
		for _, u := range r.Units {
			if prev, ok := seen[u.Name]; ok {
				errs = multierror.Append(errs,
					fmt.Errorf("structure %s generated by both %s and %s", u.Name, prev, r.Message.Name))
				continue
			}
			seen[u.Name] = r.Message.Name
		}
	}
	return errs.ErrorOrNil()
}

// Units flattens results in emission order
func Units(results []Result) []codegen.Unit {
	var units []codegen.Unit
	for _, r := range results {
		units = append(units, r.Units...)
	}
	return units
}

// LoadInputs parses every input and concatenates their messages in order.
// Each input resolves its types independently.
func LoadInputs(paths []string) ([]schema.Message, error) {
	var msgs []schema.Message
	errs := new(multierror.Error)
	for _, path := range paths {
		s, err := parser.Load(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		msgs = append(msgs, s.Messages...)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Run executes the generation described by cfg. Output goes to cfg.Output,
// or to stdout when it is empty.
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs, err := LoadInputs(cfg.Inputs)
	if err != nil {
		return err
	}
	logger.Debug().Int("messages", len(msgs)).Strs("inputs", cfg.Inputs).Msg("loaded inputs")

	results, err := Lower(ctx, msgs, OptionsFromConfig(cfg, logger))
	if err != nil {
		return err
	}
	units := Units(results)

	src, err := printer.Print(cfg.Package, sourceNames(cfg.Inputs), units)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info().
		Str("output", cfg.Output).
		Int("messages", len(msgs)).
		Int("structures", len(units)).
		Msg("generated")
	return nil
}

func sourceNames(paths []string) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ", ")
}
