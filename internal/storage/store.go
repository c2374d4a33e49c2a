package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

const (
	metadataFile = "metadata.json"
	measuresFile = "measures.csv"
)

// Store keeps saved measure reports, one directory per run. Trajectories
// themselves are never stored; the metadata records which files produced them.
type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{baseDir: baseDir, logger: logger}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string           `json:"id"`
	Timestamp    time.Time        `json:"timestamp"`
	Files        []string         `json:"files"`
	XRange       []string         `json:"x_range"`
	YRange       []string         `json:"y_range"`
	Dispersion   string           `json:"dispersion"`
	Trajectories int              `json:"trajectories"`
	Combined     measure.Measures `json:"combined"`
}

// Save writes the report and returns the new run id. Only ID, Timestamp,
// Trajectories and Combined are filled in from the report; the rest of meta
// describes the inputs.
func (s *Store) Save(meta RunMetadata, report measure.Report) (string, error) {
	meta.ID = uuid.NewString()
	meta.Timestamp = time.Now().UTC()
	meta.Trajectories = len(report.Rows) - 1
	meta.Combined = report.Combined().Measures

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, measuresFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, report, -1); err != nil {
		return "", err
	}

	s.logger.Info("saved report", "run", meta.ID, "trajectories", meta.Trajectories)
	return meta.ID, nil
}

// List returns saved runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run directory", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadReport(runID string) (measure.Report, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, measuresFile))
	if err != nil {
		return measure.Report{}, err
	}
	defer f.Close()

	report, err := ReadCSV(f)
	if err != nil {
		return measure.Report{}, fmt.Errorf("run %s: %w", runID, err)
	}
	return report, nil
}
