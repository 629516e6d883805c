package pipeline

import (
	"encoding/json"
	"path/filepath"

	"github.com/backmassage/partname/internal/naming"
	"github.com/spf13/afero"
)

// State is a file's name and decoded parts at one moment.
type State struct {
	Filename string   `json:"filename"`
	Attrs    []string `json:"attrs"`
}

// Record is the before/after pair for one successful rename.
type Record struct {
	Before State `json:"before"`
	After  State `json:"after"`
}

// Report is the ordered list of records produced by one run.
type Report []Record

// Recorder accumulates records in processing order.
type Recorder struct {
	records []Record
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append adds rec. The attrs slices are copied so later changes by the
// caller do not leak into the report.
func (r *Recorder) Append(rec Record) {
	rec.Before.Attrs = naming.Parts(rec.Before.Attrs).Clone()
	rec.After.Attrs = naming.Parts(rec.After.Attrs).Clone()
	r.records = append(r.records, rec)
}

// Export returns a copy of the accumulated records. An empty recorder
// exports an empty, non-nil Report.
func (r *Recorder) Export() Report {
	out := make(Report, len(r.records))
	copy(out, r.records)
	return out
}

// WriteReport writes report as a JSON array to path. Nothing is written for
// an empty report and the first return value is false. The file is written
// to a temporary name in the same directory and renamed into place, so a
// failed write never leaves a truncated report behind.
func WriteReport(fs afero.Fs, path string, report Report) (bool, error) {
	if len(report) == 0 {
		return false, nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return false, &PersistenceError{Path: path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return false, &PersistenceError{Path: path, Err: err}
	}
	tmp, err := afero.TempFile(fs, dir, ".partname-report-*.json")
	if err != nil {
		return false, &PersistenceError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return false, &PersistenceError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return false, &PersistenceError{Path: path, Err: err}
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return false, &PersistenceError{Path: path, Err: err}
	}
	return true, nil
}

// ReadReport loads a report previously written by WriteReport.
func ReadReport(fs afero.Fs, path string) (Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return report, nil
}
