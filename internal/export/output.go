// Package export writes sampled frames to CSV for offline inspection.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"surface-graph/internal/config"
	"surface-graph/internal/core"
)

// PointRecord is one row of points.csv.
type PointRecord struct {
	Frame int     `csv:"frame"`
	Time  float64 `csv:"time"`
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}

// SummaryRecord is one row of summary.csv.
type SummaryRecord struct {
	Frame      int     `csv:"frame"`
	Time       float64 `csv:"time"`
	Function   string  `csv:"function"`
	Resolution int     `csv:"resolution"`
	MinY       float64 `csv:"min_y"`
	MaxY       float64 `csv:"max_y"`
	MeanY      float64 `csv:"mean_y"`
	StdDevY    float64 `csv:"stddev_y"`
}

// Frame describes a sampled grid at one point in time.
type Frame struct {
	Index      int
	Time       float64
	Function   string
	Resolution int
	Points     []core.Vec3
}

// Writer appends frames to points.csv and summary.csv inside a directory.
type Writer struct {
	dir         string
	pointsFile  *os.File
	summaryFile *os.File

	pointsHeaderWritten  bool
	summaryHeaderWritten bool

	records []PointRecord
}

// NewWriter creates dir and opens the CSV files. It returns nil when dir is
// empty; a nil Writer accepts and discards every call.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	w := &Writer{dir: dir}
	f, err := os.Create(filepath.Join(dir, "points.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating points.csv: %w", err)
	}
	w.pointsFile = f

	f, err = os.Create(filepath.Join(dir, "summary.csv"))
	if err != nil {
		w.pointsFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	w.summaryFile = f
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// WriteConfig saves the effective configuration as config.yaml.
func (w *Writer) WriteConfig(cfg *config.Config) error {
	if w == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(w.dir, "config.yaml"))
}

// WriteFrame appends every point of frame plus one summary row and returns
// the frame's height statistics.
func (w *Writer) WriteFrame(frame Frame) (HeightStats, error) {
	stats := Summarize(frame.Points)
	if w == nil {
		return stats, nil
	}

	w.records = w.records[:0]
	for i, p := range frame.Points {
		w.records = append(w.records, PointRecord{
			Frame: frame.Index,
			Time:  frame.Time,
			Index: i,
			X:     p.X,
			Y:     p.Y,
			Z:     p.Z,
		})
	}
	if err := marshal(w.records, w.pointsFile, &w.pointsHeaderWritten); err != nil {
		return stats, fmt.Errorf("writing points: %w", err)
	}

	summary := []SummaryRecord{{
		Frame:      frame.Index,
		Time:       frame.Time,
		Function:   frame.Function,
		Resolution: frame.Resolution,
		MinY:       stats.Min,
		MaxY:       stats.Max,
		MeanY:      stats.Mean,
		StdDevY:    stats.StdDev,
	}}
	if err := marshal(summary, w.summaryFile, &w.summaryHeaderWritten); err != nil {
		return stats, fmt.Errorf("writing summary: %w", err)
	}
	return stats, nil
}

// marshal writes records, including the header only on the first call.
func marshal(records any, out io.Writer, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, out)
	}
	if err := gocsv.Marshal(records, out); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Close flushes and closes the CSV files.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return errors.Join(w.pointsFile.Close(), w.summaryFile.Close())
}
