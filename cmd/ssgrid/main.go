package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/config"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/ingest"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/storage"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/viz"
)

// app holds flag values shared by every command.
type app struct {
	configFile string
	preset     string
	xCol       string
	yCol       string
	timeCol    string
	idCol      string
	xRange     []string
	yRange     []string
	delimiter  string
	dataDir    string
	logLevel   string
	exact      bool
	theme      string

	format    string
	outPath   string
	only      string
	save      bool
	precision int

	title  string
	image  string
	width  int
	height int

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "ssgrid",
		Short:         "state space grid measures for dyadic trajectories",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.preset, "preset", "", "use preset coding scheme")
	pf.StringVar(&a.xCol, "x-col", config.DefaultXColumn, "column holding x states")
	pf.StringVar(&a.yCol, "y-col", config.DefaultYColumn, "column holding y states")
	pf.StringVar(&a.timeCol, "time-col", config.DefaultTimeColumn, "column holding onset times")
	pf.StringVar(&a.idCol, "id-col", "", "column splitting a file into trajectories")
	pf.StringSliceVar(&a.xRange, "x-range", nil, "ordered x labels (default 1..5)")
	pf.StringSliceVar(&a.yRange, "y-range", nil, "ordered y labels (default 1..5)")
	pf.StringVar(&a.delimiter, "delimiter", ",", "field delimiter")
	pf.StringVar(&a.dataDir, "data", config.DefaultDataDir, "data directory for saved reports")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	pf.BoolVar(&a.exact, "exact", false, "compute dispersion with exact rational arithmetic")
	pf.StringVar(&a.theme, "theme", config.DefaultTheme, "color theme: night, retro, minimal or ocean")

	measureCmd := &cobra.Command{
		Use:   "measure FILE...",
		Short: "compute measures per trajectory and combined",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runMeasure,
	}
	measureCmd.Flags().StringVar(&a.format, "format", config.DefaultFormat, "table, csv or json")
	measureCmd.Flags().StringVarP(&a.outPath, "out", "o", "", "write the report to a file")
	measureCmd.Flags().StringVar(&a.only, "only", "", "compute a single measure over all trajectories")
	measureCmd.Flags().BoolVar(&a.save, "save", false, "save the report in the data directory")
	measureCmd.Flags().IntVar(&a.precision, "precision", 6, "decimal places")

	gridCmd := &cobra.Command{
		Use:   "grid FILE...",
		Short: "draw the state space grid",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runGrid,
	}
	gridCmd.Flags().StringVar(&a.title, "title", "", "grid title")
	gridCmd.Flags().StringVar(&a.image, "image", "", "also write the grid as an image (svg, png, pdf)")

	timelineCmd := &cobra.Command{
		Use:   "timeline FILE...",
		Short: "plot visit durations",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runTimeline,
	}
	timelineCmd.Flags().IntVar(&a.width, "width", 80, "plot width")
	timelineCmd.Flags().IntVar(&a.height, "height", 12, "plot height")

	viewCmd := &cobra.Command{
		Use:   "view FILE...",
		Short: "browse trajectories and visits interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runView,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "saved reports",
	}
	runsListCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved reports",
		RunE:  a.listRuns,
	}
	runsShowCmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE:  a.showRun,
	}
	runsShowCmd.Flags().StringVar(&a.format, "format", config.DefaultFormat, "table, csv or json")
	runsShowCmd.Flags().IntVar(&a.precision, "precision", 6, "decimal places")
	runsCmd.AddCommand(runsListCmd, runsShowCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-14s x=%s y=%s\n", name, strings.Join(p.XRange, ","), strings.Join(p.YRange, ","))
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init PATH",
		Short: "write the effective config to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(measureCmd, gridCmd, timelineCmd, viewCmd, runsCmd, presetsCmd, configCmd)
	return rootCmd
}

// setup resolves the effective config: preset, then config file, then any
// flag set explicitly on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.preset != "" {
		cfg = config.GetPreset(a.preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
	}
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("x-col") {
		cfg.Columns.X = a.xCol
	}
	if flags.Changed("y-col") {
		cfg.Columns.Y = a.yCol
	}
	if flags.Changed("time-col") {
		cfg.Columns.Time = a.timeCol
	}
	if flags.Changed("id-col") {
		cfg.Columns.ID = a.idCol
	}
	if flags.Changed("x-range") {
		cfg.XRange = a.xRange
	}
	if flags.Changed("y-range") {
		cfg.YRange = a.yRange
	}
	if flags.Changed("delimiter") {
		cfg.Columns.Delimiter = a.delimiter
	}
	if flags.Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("exact") {
		cfg.Dispersion = "float"
		if a.exact {
			cfg.Dispersion = "exact"
		}
	}
	if flags.Changed("theme") {
		cfg.Output.Theme = a.theme
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Lookup("precision") != nil && flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.Output.Path = a.outPath
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Output.Theme != "" {
		if err := viz.SetTheme(cfg.Output.Theme); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}

func (a *app) space() (*grid.StateSpace[string, string], error) {
	return grid.NewStateSpace(a.cfg.XRange, a.cfg.YRange)
}

// load reads the trajectories named on the command line.
func (a *app) load(paths []string) ([]*grid.Trajectory[string, string], error) {
	space, err := a.space()
	if err != nil {
		return nil, err
	}
	r := ingest.NewReader(ingest.Columns{
		X:    a.cfg.Columns.X,
		Y:    a.cfg.Columns.Y,
		Time: a.cfg.Columns.Time,
		ID:   a.cfg.Columns.ID,
	}, ingest.WithDelimiter(a.cfg.Delimiter()), ingest.WithLogger(a.logger))

	trajs, err := r.Load(space, paths...)
	if err != nil {
		return nil, err
	}
	if len(trajs) == 0 {
		return nil, grid.ErrEmptyInput
	}
	return trajs, nil
}

func (a *app) measureOptions() []measure.Option {
	return []measure.Option{measure.WithDispersionMode(a.cfg.ExactDispersion())}
}

func (a *app) store() *storage.Store {
	return storage.New(a.cfg.DataDir, a.logger)
}
