package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int // candidates processed
	Renamed   int // includes would-be renames in dry-run
	Skipped   int // rejected by the filter
	Unchanged int // template reproduced the current name
	Invalid   int // DecodeError
	Failed    int // RenameError or unreadable entry
}

// Problems returns how many candidates ended in an error.
func (s *RunStats) Problems() int {
	return s.Invalid + s.Failed
}
