package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"guard_patrol/internal/config"
	"guard_patrol/internal/patrol"
	"guard_patrol/internal/search"
	"guard_patrol/internal/util"
)

var log = logrus.New()

type app struct {
	cfgPath  string
	workers  int
	logLevel string
	trace    string
	cfg      *config.RunConfig
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "patrol",
		Short:         "Simulate a patrolling guard and search for trapping obstructions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML run config")
	pf.IntVar(&a.workers, "workers", 0, "concurrent obstruction trials (1 = sequential)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.trace, "trace", "", "write the baseline event log as JSON to this file")

	root.AddCommand(
		&cobra.Command{
			Use:   "visited [layout]",
			Short: "Count distinct cells visited before the guard leaves",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.solve(cmd, args, true, false)
			},
		},
		&cobra.Command{
			Use:   "loops [layout]",
			Short: "Count single obstructions that trap the guard in a loop",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.solve(cmd, args, false, true)
			},
		},
		&cobra.Command{
			Use:   "run [layout]",
			Short: "Print both counts, one per line",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.solve(cmd, args, true, true)
			},
		},
		a.genCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("trace") {
		cfg.Trace.Path = a.trace
	}
	lvl, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(cmd.ErrOrStderr())
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	a.cfg = cfg
	return nil
}

func readLayout(cmd *cobra.Command, args []string) (patrol.GridMap, patrol.Guard, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return patrol.GridMap{}, patrol.Guard{}, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	m, g, err := patrol.ParseReader(r)
	if err != nil {
		return patrol.GridMap{}, patrol.Guard{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return m, g, nil
}

func (a *app) solve(cmd *cobra.Command, args []string, visited, loops bool) error {
	m, start, err := readLayout(cmd, args)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":      m.Dimension().Rows,
		"cols":      m.Dimension().Cols,
		"obstacles": m.ObstacleCount(),
		"guard":     start.String(),
	}).Debug("layout loaded")

	opts := []patrol.Option{patrol.WithPath()}
	var rec *patrol.Recorder
	if a.cfg.Trace.Path != "" {
		rec = &patrol.Recorder{}
		opts = append(opts, patrol.WithObserver(rec.Emit))
	}
	baseline := patrol.Simulate(m, start, opts...)
	log.WithFields(logrus.Fields{
		"outcome": baseline.Outcome.String(),
		"steps":   baseline.Steps,
		"cells":   baseline.Visited(),
	}).Info("baseline patrol finished")

	if rec != nil {
		if err := writeTrace(a.cfg.Trace.Path, m, start, baseline, rec); err != nil {
			return err
		}
		log.WithField("path", a.cfg.Trace.Path).Info("trace written")
	}

	out := cmd.OutOrStdout()
	if visited {
		fmt.Fprintln(out, baseline.Visited())
	}
	if loops {
		n, err := search.CountLoops(cmd.Context(), m, baseline, search.Options{
			Workers: a.cfg.Search.Workers,
			Log:     log,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
	}
	return nil
}

func writeTrace(path string, m patrol.GridMap, start patrol.Guard, res patrol.Result, rec *patrol.Recorder) error {
	dump := struct {
		Grid   patrol.Dimension `json:"grid"`
		Start  patrol.Guard     `json:"start"`
		Result patrol.Result    `json:"result"`
		Events []patrol.Event   `json:"events"`
	}{m.Dimension(), start, res, rec.Events}
	b, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (a *app) genCmd() *cobra.Command {
	var rows, cols int
	var density float64
	var seed int64
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a random valid layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := a.cfg.Gen
			flags := cmd.Flags()
			if flags.Changed("rows") {
				gc.Rows = rows
			}
			if flags.Changed("cols") {
				gc.Cols = cols
			}
			if flags.Changed("density") {
				gc.Density = density
			}
			if flags.Changed("seed") {
				gc.Seed = seed
			}
			if gc.Rows < 1 || gc.Cols < 1 {
				return fmt.Errorf("grid must be at least 1x1, got %dx%d", gc.Rows, gc.Cols)
			}
			m, g, err := util.RandomLayout(util.New(gc.Seed), gc.Rows, gc.Cols, gc.Density)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), patrol.Render(m, g))
			return err
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns")
	cmd.Flags().Float64Var(&density, "density", 0, "obstacle probability per cell")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("patrol failed")
		os.Exit(1)
	}
}
