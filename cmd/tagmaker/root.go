package main

import (
	stderrors "errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tagmaker"
	"github.com/vango-dev/tagmaker/internal/config"
	"github.com/vango-dev/tagmaker/internal/errors"
	"github.com/vango-dev/tagmaker/pkg/middleware"
)

// Metrics register once per process, so every run shares one registry.
var metricsRegistry = prometheus.NewRegistry()

// app holds what every command needs once flags and config are read.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	maker    *tagmaker.Maker
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tagmaker",
		Short: "Build and parse HTML tags from compact rules",
		Long: `tagmaker turns CSS-selector-like rules into HTML elements
and literal HTML tags back into elements.

Rules look like:

  tag#id.class1.class2[key=value,flag]{content}

Every part is optional; a rule without a tag name builds a div.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./"+config.ConfigFileName+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		createCmd(a),
		decodeCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// init loads the configuration and builds the logger and Maker.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if cfg.Path() != "" {
		a.logger.Debug("config loaded", "path", cfg.Path())
	}

	var mw []middleware.Middleware
	if cfg.Tracing.Enabled {
		mw = append(mw, middleware.OpenTelemetry(
			middleware.WithTracerName(cfg.Tracing.TracerName),
			middleware.WithIncludeInput(cfg.Tracing.IncludeInput),
		))
	}
	if cfg.Metrics.Enabled {
		a.registry = metricsRegistry
		mw = append(mw, middleware.Prometheus(
			middleware.WithRegistry(a.registry),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		))
	}

	a.maker = tagmaker.New(tagmaker.Config{
		Logger:     a.logger,
		Middleware: mw,
		Escape:     cfg.Escape,
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}

	cfg, err := config.Load(".")
	if stderrors.Is(err, errors.ErrConfigNotFound) {
		return config.New(), nil
	}
	return cfg, err
}

// withMetrics runs fn and then flushes metrics, whether fn failed or not.
func (a *app) withMetrics(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if ferr := a.flushMetrics(cmd); err == nil {
				err = ferr
			}
		}()
		return fn(cmd, args)
	}
}

// flushMetrics writes the collected metrics in the Prometheus text
// format to stderr when metrics are enabled.
func (a *app) flushMetrics(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return err
		}
	}
	return nil
}
