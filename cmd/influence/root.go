package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/influence/config"
	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/influence"
	"github.com/katalvlaran/influence/network"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	p        *printer
	errOut   io.Writer
	v        *viper.Viper
	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"network":    "network",
	"category":   "category",
	"max-depth":  "max_depth",
	"max-steps":  "max_steps",
	"tolerance":  "tolerance",
	"log-format": "log_format",
	"verbose":    "verbose",
	"trace":      "trace",
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{p: newPrinter(out), errOut: errOut}

	root := &cobra.Command{
		Use:           "influence",
		Short:         "Influence indices of weighted directed networks",
		Long:          "influence scores every node by the value it reaches downstream, decayed along each simple path, and aggregates the score per node category.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .influence.yaml)")
	pf.StringP("network", "n", "", "network YAML file (default: embedded sample)")
	pf.StringP("category", "c", config.DefaultCategory, "category for the cumulative index")
	pf.Int("max-depth", -1, "abort a source deeper than this many edges (-1 = unlimited)")
	pf.Int("max-steps", -1, "abort a pass after this many edge expansions (-1 = unlimited)")
	pf.Float64("tolerance", config.DefaultTolerance, "agreement tolerance against the closed form")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("trace", false, "print finished spans to stderr")

	root.AddCommand(
		newRunCmd(a),
		newCumulativeCmd(a),
		newAnalyticalCmd(a),
		newClassifyCmd(a),
		newShowCmd(a),
	)

	return root
}

// init resolves configuration, logging and tracing for cmd.
func (a *app) init(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	a.v = config.New(cfgFile)
	for name, key := range flagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, hopts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.errOut, hopts))
	}

	if cfg.Trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(a.errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exp),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)
		a.shutdown = tp.Shutdown
	}

	a.logger.Debug("config resolved",
		slog.String("network", cfg.Network),
		slog.String("category", cfg.Category),
		slog.Int("max_depth", cfg.MaxDepth),
		slog.Int("max_steps", cfg.MaxSteps),
	)

	return nil
}

// graph loads the configured network.
func (a *app) graph() (*core.Graph, error) {
	f, err := network.Load(a.cfg.Network)
	if err != nil {
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("network %q: %w", f.Name, err)
	}
	st := g.Stats()
	a.logger.Debug("network loaded",
		slog.String("name", f.Name),
		slog.Int("vertices", st.VertexCount),
		slog.Int("edges", st.EdgeCount),
	)

	return g, nil
}

// engine returns an Engine configured from flags, reporting to obs.
func (a *app) engine(ctx context.Context, obs ...influence.Observer) *influence.Engine {
	opts := []influence.Option{
		influence.WithContext(ctx),
		influence.WithMaxDepth(a.cfg.MaxDepth),
		influence.WithMaxSteps(a.cfg.MaxSteps),
		influence.WithLogger(a.logger),
	}
	if len(obs) > 0 {
		opts = append(opts, influence.WithObserver(influence.Observers(obs)))
	}

	return influence.NewEngine(nil, opts...)
}
