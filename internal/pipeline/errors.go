package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/partname/internal/display"
)

var (
	// ErrTargetExists is wrapped by a RenameError when the computed name is
	// already taken, on disk or by an earlier candidate in the same run.
	ErrTargetExists = errors.New("target already exists")
	// ErrInvalidTarget is wrapped by a RenameError when the template produced
	// something that cannot be a filename in the candidate's directory.
	ErrInvalidTarget = errors.New("invalid target name")
)

// DecodeError reports a candidate whose name could not be turned into a
// target: the filter or template referenced a part the name does not have.
// The candidate is skipped and the run continues.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RenameError reports a candidate that was decoded but could not be renamed.
// The file keeps its original name.
type RenameError struct {
	Name   string
	Target string
	Err    error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.Name, e.Target, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// PersistenceError reports a failure to write the batch report. Renames that
// already happened are not rolled back.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// formatProblems is the multierror.ErrorFormat for Result.Errors.
func formatProblems(errs []error) string {
	var b strings.Builder
	b.WriteString(display.FormatCount(len(errs), "problem"))
	b.WriteByte(':')
	for _, err := range errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}
