package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/export"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/storage"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/viz"
)

func (a *app) runMeasure(cmd *cobra.Command, args []string) error {
	trajs, err := a.load(args)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded trajectories", "files", len(args), "trajectories", len(trajs))

	if a.only != "" {
		fn, err := measure.NewRegistry[string, string]().Get(a.only)
		if err != nil {
			return err
		}
		v, err := fn(trajs...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.only, formatValue(a.only, v, a.cfg.Output.Precision))
		return nil
	}

	report, err := measure.BuildReport(trajs, a.measureOptions()...)
	if err != nil {
		return err
	}

	if a.save {
		id, err := a.store().Save(storage.RunMetadata{
			Files:      args,
			XRange:     a.cfg.XRange,
			YRange:     a.cfg.YRange,
			Dispersion: a.cfg.Dispersion,
		}, report)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run id: %s\n", id)
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output.Path != "" {
		f, err := os.Create(a.cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeReport(out, report, a.cfg.Output.Format, a.cfg.Output.Precision)
}

func (a *app) runGrid(cmd *cobra.Command, args []string) error {
	trajs, err := a.load(args)
	if err != nil {
		return err
	}
	paths, err := viz.Paths(trajs)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.RenderGrid(paths, viz.GridOptions[string, string]{
		Title:  a.title,
		XLabel: a.cfg.Columns.X,
		YLabel: a.cfg.Columns.Y,
	}))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.RenderVisits(paths))

	if a.image != "" {
		err := export.SaveGrid(a.image, paths, export.PlotOptions{
			Title:  a.title,
			XLabel: a.cfg.Columns.X,
			YLabel: a.cfg.Columns.Y,
		})
		if err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
		a.logger.Info("wrote grid image", "file", a.image)
	}
	return nil
}

func (a *app) runTimeline(cmd *cobra.Command, args []string) error {
	trajs, err := a.load(args)
	if err != nil {
		return err
	}
	paths, err := viz.Paths(trajs)
	if err != nil {
		return err
	}
	plot, err := viz.RenderTimeline(paths, a.width, a.height)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), plot)
	return nil
}

func (a *app) runView(cmd *cobra.Command, args []string) error {
	trajs, err := a.load(args)
	if err != nil {
		return err
	}
	report, err := measure.BuildReport(trajs, a.measureOptions()...)
	if err != nil {
		return err
	}
	paths, err := viz.Paths(trajs)
	if err != nil {
		return err
	}
	return viz.RunBrowser(paths, report, viz.GridOptions[string, string]{
		XLabel: a.cfg.Columns.X,
		YLabel: a.cfg.Columns.Y,
	})
}

func (a *app) listRuns(cmd *cobra.Command, args []string) error {
	runs, err := a.store().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFILES\tTRAJ\tDISPERSION\tMEAN_DISP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(run.Files, ","),
			run.Trajectories,
			run.Dispersion,
			run.Combined.MeanDispersion,
		)
	}
	return w.Flush()
}

func (a *app) showRun(cmd *cobra.Command, args []string) error {
	st := a.store()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	report, err := st.LoadReport(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output.Format == "table" {
		fmt.Fprintf(out, "run: %s\n", meta.ID)
		fmt.Fprintf(out, "files: %s\n", strings.Join(meta.Files, ", "))
		fmt.Fprintf(out, "x: %s  y: %s\n\n", strings.Join(meta.XRange, ","), strings.Join(meta.YRange, ","))
	}
	return writeReport(out, report, a.cfg.Output.Format, a.cfg.Output.Precision)
}

func writeReport(w io.Writer, report measure.Report, format string, precision int) error {
	switch format {
	case "csv":
		return storage.WriteCSV(w, report, precision)
	case "json":
		return storage.WriteJSON(w, report)
	case "table":
		_, err := fmt.Fprintln(w, reportTable(report, precision))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// reportTable lays measures out as rows with one column per report row.
func reportTable(report measure.Report, precision int) string {
	headers := []string{"measure"}
	for _, row := range report.Rows {
		headers = append(headers, row.Label)
	}

	rows := make([][]string, len(measure.FieldNames))
	for i, name := range measure.FieldNames {
		rows[i] = []string{name}
	}
	for _, row := range report.Rows {
		for i, f := range row.Measures.Fields() {
			rows[i] = append(rows[i], formatValue(f.Name, f.Value, precision))
		}
	}

	header := viz.Title.Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(viz.Subtle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return viz.MetricLabel.Padding(0, 1)
			default:
				return cell.Align(lipgloss.Right)
			}
		})
	return t.String()
}

func formatValue(name string, v float64, precision int) string {
	if name == "total_state_range" {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
