// SPDX-License-Identifier: MIT

// Package cmd holds the lvroute cobra commands.
package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/drawing"
	"github.com/katalvlaran/lvroute/internal/logger"
	"github.com/katalvlaran/lvroute/route"
)

// ErrNoInput is returned by graph commands run without --input.
var ErrNoInput = errors.New("no input drawing: set --input or input in the config file")

// app is the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

// Execute runs the command tree on os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		log.Err(err).Msg("")
		return err
	}

	return nil
}

// NewRootCmd builds an independent command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Route inspection on line drawings",
		Long: "lvroute turns a line drawing into a weighted multigraph, answers shortest " +
			"path queries on it and plans the cheapest closed walk covering every line " +
			"(route inspection).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file")
	pf.String("log-format", logger.LogFormatTextValue, "logging format [text|json]")
	pf.String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue, zerolog.LevelInfoValue, zerolog.LevelWarnValue, zerolog.LevelErrorValue),
	)
	pf.StringP("input", "i", "", "YAML drawing to load")
	pf.Bool("compact", false, "fold pass-through nodes before solving")
	pf.Float64("length-scale", core.DefaultLengthScale, "drawn length to cost factor (a scale in the drawing wins)")

	for key, flag := range map[string]string{
		"log.format":           "log-format",
		"log.level":            "log-level",
		"input":                "input",
		"drawing.compact":      "compact",
		"drawing.length-scale": "length-scale",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newCostCmd(a),
		newTrailCmd(a),
		newUnbalancedCmd(a),
		newNormalizeCmd(a),
		newCircuitCmd(a),
		newDistancesCmd(a),
		newMatrixCmd(a),
		newDemoCmd(a),
	)

	return root
}

// localFlags maps per-command flags to config keys. Several commands share
// a flag name, so binding happens once the running command is known.
var localFlags = map[string]string{
	"match.strategy": "strategy",
	"match.improve":  "improve",
}

func (a *app) init(cmd *cobra.Command) error {
	for key, name := range localFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.log, err = logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	log.Logger = a.log

	return nil
}

// graph loads the configured drawing, compacting it when asked.
func (a *app) graph() (*core.Graph, error) {
	if a.cfg.Input == "" {
		return nil, ErrNoInput
	}
	f, err := drawing.Load(a.cfg.Input)
	if err != nil {
		return nil, err
	}
	g, err := f.Graph(a.cfg.Drawing.LengthScale, core.WithGraphOptions(core.WithLogger(a.log)))
	if err != nil {
		return nil, err
	}
	if a.cfg.Drawing.Compact {
		st := g.Compact()
		a.log.Info().
			Int("folded", st.Folded).
			Int("isolated", st.Isolated).
			Int("skipped", st.Skipped).
			Msg("compacted")
	}
	a.log.Debug().
		Str("input", a.cfg.Input).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph loaded")

	return g, nil
}

func (a *app) inspector(opts ...route.Option) (*route.Inspector, *core.Graph, error) {
	g, err := a.graph()
	if err != nil {
		return nil, nil, err
	}
	in, err := route.NewInspector(g, append([]route.Option{route.WithLogger(a.log)}, opts...)...)
	if err != nil {
		return nil, nil, err
	}

	return in, g, nil
}
