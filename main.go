package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cubewalk/pkg/engine/terminal"
	"cubewalk/pkg/game/config"
	"cubewalk/pkg/game/devtools"
	"cubewalk/pkg/game/puzzle"
	"cubewalk/pkg/game/renderer"
	"cubewalk/pkg/game/simulation"
)

type flags struct {
	configPath string
	cubeSize   int
	strategies []string
	trace      bool
	dump       string
	logLevel   string
	color      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "cubewalk [input]",
		Short: "Walk a board with flat and cube-folded wrapping and print the passwords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&f.cubeSize, "cube-size", "n", 0, "edge length of one cube face in cells")
	cmd.Flags().StringSliceVarP(&f.strategies, "strategy", "s", nil, "wrap strategies to run (flat, cube)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "draw the walked path after each run")
	cmd.Flags().StringVar(&f.dump, "dump", "", "write a debug report of the board, cube net and walks to this file")
	cmd.Flags().Lookup("dump").NoOptDefVal = devtools.DefaultDumpFilename
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.color, "color", "", "color output (auto, always, never)")
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Input = args[0]
	}
	changed := cmd.Flags().Changed
	if changed("cube-size") {
		cfg.CubeSize = f.cubeSize
	}
	if changed("strategy") {
		cfg.Strategies = f.strategies
	}
	if changed("trace") {
		cfg.Trace = f.trace
	}
	if changed("dump") {
		cfg.Dump = f.dump
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("color") {
		cfg.Color = f.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log.SetLevel(cfg.Level())
	log.SetOutput(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	switch cfg.Color {
	case config.ColorAlways:
		renderer.InitColors(true)
	case config.ColorNever:
		renderer.InitColors(false)
	default:
		renderer.InitColors(terminal.IsTerminal(out))
	}

	p, err := puzzle.Load(cfg.Input)
	if err != nil {
		return err
	}
	strategies, err := cfg.ParsedStrategies()
	if err != nil {
		return err
	}

	entry := log.WithField("input", cfg.Input)
	entry.WithFields(log.Fields{
		"cube_size":    cfg.CubeSize,
		"rows":         p.Grid.Rows(),
		"cols":         p.Grid.Cols(),
		"instructions": len(p.Instructions),
	}).Debug("puzzle loaded")

	results, err := simulation.Run(p, simulation.Options{
		CubeSize:   cfg.CubeSize,
		Strategies: strategies,
		Trace:      cfg.Trace || cfg.Dump != "",
		Logger:     entry,
	})
	if err != nil {
		return err
	}

	if cfg.Dump != "" {
		path, err := devtools.DumpToFile(cfg.Dump, p, cfg.CubeSize, results)
		if err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
		entry.WithField("path", path).Info("debug dump written")
	}

	width := terminal.TraceWidth(out)
	for _, res := range results {
		if cfg.Trace {
			renderer.PrintString(out, "LABEL{%s}\n", fmt.Sprintf(renderer.T("TRACE_HEADER"), res.Strategy))
			if renderer.RenderTrace(out, p.Grid, res.Track, res.Position, width) {
				fmt.Fprintf(out, renderer.T("TRACE_CROPPED")+"\n", width)
			}
			fmt.Fprintln(out)
		}
		renderer.PrintResult(out, res.Strategy, res.Position, res.Facing, res.Password)
	}
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", renderer.ColorDenied.Sprint(renderer.T("RUN_FAILED")), err)
		os.Exit(1)
	}
}
