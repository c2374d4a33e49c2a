// Package ingest turns delimited text files into validated trajectories.
//
// Each file must carry a header row. The x, y and time columns are located by
// name; an optional id column splits one file into several trajectories.
// Rows with both coordinates set add a state, rows with neither only contribute
// their timestamp, which is how the closing fencepost is usually recorded.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

var ErrMissingColumn = errors.New("ingest: column not found in header")

type Columns struct {
	X    string
	Y    string
	Time string
	ID   string
}

// Series is the raw column data for one trajectory, before validation.
type Series struct {
	ID     string
	States [][]string
	Times  []string
}

type Reader struct {
	cols      Columns
	delimiter rune
	logger    *slog.Logger
}

type Option func(*Reader)

func WithDelimiter(d rune) Option {
	return func(r *Reader) { r.delimiter = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewReader(cols Columns, opts ...Option) *Reader {
	r := &Reader{
		cols:      cols,
		delimiter: ',',
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads every file and builds its trajectories over space, in file order.
func (r *Reader) Load(space *grid.StateSpace[string, string], paths ...string) ([]*grid.Trajectory[string, string], error) {
	var trajs []*grid.Trajectory[string, string]
	for _, path := range paths {
		series, err := r.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, s := range series {
			t, err := Build(space, s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			r.logger.Debug("built trajectory", "file", path, "id", s.ID, "events", t.Len())
			trajs = append(trajs, t)
		}
	}
	return trajs, nil
}

func (r *Reader) ReadFile(path string) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	series, err := r.Read(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Info("read trajectories", "file", path, "count", len(series))
	return series, nil
}

// Read parses one delimited stream. Without an id column the whole stream is a
// single series named name; otherwise series are named by id in order of first
// appearance.
func (r *Reader) Read(name string, in io.Reader) ([]Series, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	xCol, err := column(header, r.cols.X)
	if err != nil {
		return nil, err
	}
	yCol, err := column(header, r.cols.Y)
	if err != nil {
		return nil, err
	}
	tCol, err := column(header, r.cols.Time)
	if err != nil {
		return nil, err
	}
	idCol := -1
	if r.cols.ID != "" {
		if idCol, err = column(header, r.cols.ID); err != nil {
			return nil, err
		}
	}

	var order []string
	byID := make(map[string]*Series)
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		id := name
		if idCol >= 0 {
			id = cell(record, idCol)
			if id == "" {
				r.logger.Warn("skipping row without id", "line", line)
				continue
			}
		}
		s, ok := byID[id]
		if !ok {
			s = &Series{ID: id}
			byID[id] = s
			order = append(order, id)
		}

		x, y := cell(record, xCol), cell(record, yCol)
		switch {
		case x != "" && y != "":
			s.States = append(s.States, []string{x, y})
		case x != "" || y != "":
			// kept so that pairing reports the malformed row
			s.States = append(s.States, []string{x + y})
		}
		if t := cell(record, tCol); t != "" {
			s.Times = append(s.Times, t)
		}
	}

	out := make([]Series, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

// Build validates one series into a trajectory.
func Build(space *grid.StateSpace[string, string], s Series) (*grid.Trajectory[string, string], error) {
	states, err := grid.PairStates(s.States)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.ID, err)
	}
	times, err := grid.ParseTimes(s.Times)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.ID, err)
	}
	t, err := grid.New(space, states, times, grid.WithID(s.ID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.ID, err)
	}
	return t, nil
}

func column(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
