package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/c360studio/xea2rdf/config"
	"github.com/c360studio/xea2rdf/mapper"
	"github.com/c360studio/xea2rdf/metrics"
	"github.com/c360studio/xea2rdf/storage"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const usage = "Usage: xea2rdf -i <input.qea> -o <output.ttl>"

// options holds the command-line flags. Empty values defer to config files.
type options struct {
	input       string
	output      string
	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string
}

func (o options) overrides() *config.Config {
	return &config.Config{
		Input:   o.input,
		Output:  o.output,
		Log:     config.LogConfig{Level: o.logLevel, Format: o.logFormat},
		Metrics: config.MetricsConfig{File: o.metricsFile},
	}
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	// Bootstrap logger for config loading, replaced once the level is known
	logger := newLogger(stderr, opts.logLevel, opts.logFormat)

	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(opts.overrides())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = newLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if !cfg.Ready() {
		logger.Info(usage)
		return nil
	}

	return convert(ctx, cfg, logger, stdout)
}

func convert(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) (err error) {
	logger = logger.With(slog.String("run_id", uuid.NewString()))
	logger.Info("Starting conversion",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.Output))

	collector := metrics.NewCollector()
	if cfg.Metrics.File != "" {
		defer func() {
			if werr := collector.WriteTextfile(cfg.Metrics.File); werr != nil {
				logger.Warn("Failed to write metrics", slog.String("path", cfg.Metrics.File), slog.String("error", werr.Error()))
			}
		}()
	}

	src, err := storage.OpenSQLite(ctx, cfg.Input)
	if err != nil {
		logger.Error("Failed to open repository", slog.String("error", err.Error()))
		collector.Finished(0, false, time.Now())
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Error("Failed to close repository", slog.String("error", cerr.Error()))
		}
	}()
	logger.Debug("Connection to SQLite has been established")

	out, closeOut, err := openOutput(cfg.Output, stdout)
	if err != nil {
		logger.Error("Failed to open output", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	stats, err := mapper.NewConverter(src, out,
		mapper.WithLogger(logger),
		mapper.WithMetrics(collector),
	).Run(ctx)
	if err != nil {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Conversion complete",
		slog.Int("subjects", stats.Subjects()),
		slog.Duration("duration", stats.Duration))
	return nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == config.StdoutPath {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func initConfigCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Create ~/.config/xea2rdf/config.yaml with defaults if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.NewLoader(newLogger(stderr, "info", "text")).EnsureUserConfig()
		},
	}
}
