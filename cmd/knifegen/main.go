// cmd/knifegen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sghaida/knife/inject"
	"github.com/sghaida/knife/internal/config"
	"github.com/sghaida/knife/internal/output"
	"github.com/sghaida/knife/internal/spec"
	"github.com/sghaida/knife/internal/watch"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// notifyContext is overridden in tests to stop -watch without signals.
var notifyContext = signal.NotifyContext

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("knifegen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to the binding description (.yaml, .yml or .json)")
	outDir := flags.String("out", "", "output root directory")
	configPath := flags.String("config", "", "optional YAML config file")
	workers := flags.Int("workers", 0, "parallel render/write workers (default: config or NumCPU)")
	watchMode := flags.Bool("watch", false, "regenerate whenever the description changes")
	verbose := flags.Bool("verbose", false, "debug logging")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: knifegen -spec <bindings.yaml> -out <dir> [-config <knife.yaml>] [-workers N] [-watch] [-verbose]")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "knifegen:", err)
		return 2
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "knifegen:", err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "knifegen:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func() error { return generate(ctx, *specPath, cfg, logger) }

	if err := regenerate(); err != nil {
		reportErrors(stderr, err)
		if !*watchMode {
			return 1
		}
	}

	if *watchMode {
		if err := watch.File(ctx, *specPath, cfg.WatchDebounce, logger, regenerate); err != nil && ctx.Err() == nil {
			_, _ = fmt.Fprintln(stderr, "knifegen:", err)
			return 1
		}
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// generate loads the description, builds the injector models and writes them.
func generate(ctx context.Context, specPath string, cfg config.Config, logger *zap.Logger) error {
	doc, err := spec.Load(specPath)
	if err != nil {
		return err
	}

	classes, err := spec.Build(doc, cfg.Dialect.Resolve())
	if err != nil {
		return err
	}

	snaps := make([]*inject.Snapshot, 0, len(classes))
	for _, class := range classes {
		snaps = append(snaps, class.Snapshot())
	}

	gen := output.NewGenerator(cfg.OutDir, output.WithWorkers(cfg.Workers), output.WithLogger(logger))
	results, err := gen.Generate(ctx, snaps)
	if err != nil {
		return err
	}

	unchanged := 0
	for _, res := range results {
		if res.Unchanged {
			unchanged++
		}
	}
	logger.Info("generation complete",
		zap.String("spec", specPath),
		zap.Int("injectors", len(results)),
		zap.Int("written", len(results)-unchanged),
		zap.Int("unchanged", unchanged),
	)
	return nil
}

// reportErrors prints each aggregated error on its own line.
func reportErrors(stderr io.Writer, err error) {
	for _, e := range multierr.Errors(err) {
		_, _ = fmt.Fprintln(stderr, "knifegen:", e)
	}
}

// newLogger returns a console logger writing to w at level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core), nil
}
