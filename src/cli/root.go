// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/binspan/src/config"
	"github.com/H0llyW00dzZ/binspan/src/gc"
	"github.com/H0llyW00dzZ/binspan/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/binspan/src/logger"
	"github.com/H0llyW00dzZ/binspan/src/stopwatch"
	concpool "github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

// ErrInvalidOption is returned when a flag value is out of range or when
// standard input is named more than once.
var ErrInvalidOption = errors.New("invalid option")

// stdinName is the argument that selects standard input.
const stdinName = "-"

// flags holds the raw command-line values before they are merged with the
// configuration file.
type flags struct {
	configPath string
	output     string
	logFile    string
	delimiter  string
	lower      bool
	width      int
	chunk      int
	workers    int
	skip       int
	limit      int64
	json       bool
	stats      bool
}

// Execute runs the root command with os.Args, handling any errors that occur
// during execution.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewRootCommand(version, log)
	cmd.SetArgs(os.Args[1:])
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the binspan command. Arguments and output streams can
// be replaced with SetArgs, SetOut and SetErr before executing it.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   posix.ExecutableName(os.Args, "binspan") + " [FILE...]",
		Short: "Hex dump files through pooled byte spans",
		Long: `binspan renders files as hex text, eight byte pairs per group.

Byte pairs are joined by the delimiter, and the delimiter is doubled after
every eighth byte, for example 11-22-33-44-55-66-77-88--99. Without FILE, or
when FILE is -, standard input is read.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, log)
		},
	}

	defaults := config.Default()
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "JSON or YAML config file (env "+config.EnvConfigFile+")")
	fl.StringVarP(&f.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	fl.StringVar(&f.logFile, "log-file", "", "append JSON log entries to a rotating file")
	fl.StringVarP(&f.delimiter, "delimiter", "d", defaults.Output.Delimiter, "separator between byte pairs")
	fl.BoolVarP(&f.lower, "lower", "l", defaults.Output.Lowercase, "use lowercase hex digits")
	fl.IntVarP(&f.width, "width", "w", defaults.Output.Width, "bytes per line, 0 for a single line")
	fl.IntVarP(&f.chunk, "chunk", "c", defaults.Input.ChunkSize, "bytes read per chunk")
	fl.IntVar(&f.workers, "workers", defaults.Input.Workers, "files processed concurrently")
	fl.IntVar(&f.skip, "skip", 0, "discard N leading bytes of each input")
	fl.Int64Var(&f.limit, "limit", -1, "emit at most N bytes of each input, negative for no limit")
	fl.BoolVarP(&f.json, "json", "j", false, "emit a JSON summary")
	fl.BoolVar(&f.stats, "stats", false, "print per-input summaries and pool metrics to stderr")

	return cmd
}

// settings merges the configuration file with flags that were set explicitly
// and checks the inputs. Standard input can be read only once, so "-" may
// appear at most once in args.
func settings(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("delimiter") {
		cfg.Output.Delimiter = f.delimiter
	}
	if fl.Changed("lower") {
		cfg.Output.Lowercase = f.lower
	}
	if fl.Changed("width") {
		cfg.Output.Width = f.width
	}
	if fl.Changed("chunk") {
		cfg.Input.ChunkSize = f.chunk
	}
	if fl.Changed("workers") {
		cfg.Input.Workers = f.workers
	}
	if fl.Changed("log-file") {
		cfg.Log.File = f.logFile
	}

	switch {
	case cfg.Output.Width < 0:
		return nil, fmt.Errorf("%w: width %d must not be negative", ErrInvalidOption, cfg.Output.Width)
	case cfg.Input.ChunkSize <= 0:
		return nil, fmt.Errorf("%w: chunk %d must be positive", ErrInvalidOption, cfg.Input.ChunkSize)
	case cfg.Input.Workers <= 0:
		return nil, fmt.Errorf("%w: workers %d must be positive", ErrInvalidOption, cfg.Input.Workers)
	case f.skip < 0:
		return nil, fmt.Errorf("%w: skip %d must not be negative", ErrInvalidOption, f.skip)
	}

	stdin := 0
	for _, name := range args {
		if name == stdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("%w: standard input (%s) given %d times", ErrInvalidOption, stdinName, stdin)
	}
	return cfg, nil
}

// run dumps every input concurrently and writes the results in argument order.
func run(cmd *cobra.Command, args []string, f *flags, log logger.Logger) error {
	cfg, err := settings(cmd, f, args)
	if err != nil {
		return err
	}

	// Per-input summaries are logged only when a log file is configured.
	var events logger.Logger
	if cfg.Log.File != "" {
		fileLog := logger.NewRotatingJSONLogger(logger.FileConfig{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
		defer fileLog.Close()
		events = fileLog
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	texts := gc.NewTextPool(cfg.Pools.TextBuffers)
	watches := stopwatch.NewPool(cfg.Pools.Stopwatches)
	d := newDumper(dumpOptions{
		delimiter: cfg.Output.Delimiter,
		lower:     cfg.Output.Lowercase,
		width:     cfg.Output.Width,
		chunk:     cfg.Input.ChunkSize,
		skip:      f.skip,
		limit:     f.limit,
	}, texts, watches)

	results := make([]*Result, len(args))
	p := concpool.New().WithMaxGoroutines(cfg.Input.Workers).WithContext(cmd.Context()).WithCancelOnError()
	for i, name := range args {
		p.Go(func(ctx context.Context) error {
			res, err := dumpInput(ctx, d, name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			results[i] = res
			if events != nil {
				events.Println(summarize(res))
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	if err := writeOutput(cmd, f, d, results); err != nil {
		return err
	}
	if f.output != "" {
		log.Printf("Wrote %d inputs to %s", len(results), f.output)
	}

	if f.stats {
		errOut := cmd.ErrOrStderr()
		for _, res := range results {
			fmt.Fprintln(errOut, summarize(res))
		}
		fmt.Fprint(errOut, renderStats(results,
			namedMetrics{name: "text", m: texts.Metrics()},
			namedMetrics{name: "stopwatch", m: watches.Metrics()},
		))
	}
	return nil
}

func dumpInput(ctx context.Context, d *dumper, name string, stdin io.Reader) (*Result, error) {
	if name == stdinName {
		return d.dump(ctx, "<stdin>", stdin)
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	defer file.Close()

	return d.dump(ctx, name, file)
}

// writeOutput writes results to the output file or stdout, as text or JSON.
func writeOutput(cmd *cobra.Command, f *flags, d *dumper, results []*Result) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, oerr := os.Create(f.output)
		if oerr != nil {
			return fmt.Errorf("error writing to output file: %w", oerr)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Inputs []*Result `json:"inputs"`
		}{results})
	}

	header := len(results) > 1
	for _, res := range results {
		if err := d.writeText(w, res, header); err != nil {
			return err
		}
	}
	return nil
}
