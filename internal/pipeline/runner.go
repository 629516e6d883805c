package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/backmassage/partname/internal/display"
	"github.com/backmassage/partname/internal/files"
	"github.com/backmassage/partname/internal/logging"
	"github.com/backmassage/partname/internal/naming"
	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

// Result is the outcome of one Run.
type Result struct {
	RunID       string
	Report      Report
	Stats       RunStats
	Errors      *multierror.Error
	Interrupted bool
}

// Err returns the aggregated per-candidate errors, or nil. Its message
// lists one problem per line.
func (r *Result) Err() error {
	return r.Errors.ErrorOrNil()
}

// outcome is where one candidate ended up.
type outcome int

const (
	outcomeRenamed outcome = iota
	outcomeSkipped
	outcomeUnchanged
	outcomeInvalid
	outcomeFailed
)

// runner holds the per-run state shared by every candidate.
type runner struct {
	fs       afero.Fs
	job      *Job
	log      *logging.Logger
	ledger   *RenameLedger
	recorder *Recorder
}

// Run processes every candidate of job.Dir in enumeration order. It returns
// an error only when the batch cannot start (bad pattern, missing
// directory); problems with individual files are logged, counted and
// collected in Result.Errors.
func Run(ctx context.Context, fs afero.Fs, job *Job, log *logging.Logger) (*Result, error) {
	seq, err := files.Candidates(fs, job.Dir, job.Pattern)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: ulid.Make().String()}
	r := &runner{
		fs:       fs,
		job:      job,
		log:      log,
		ledger:   NewRenameLedger(),
		recorder: NewRecorder(),
	}

	logBatchHeader(job, log, res.RunID)

	for h, err := range seq {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			res.Interrupted = true
			break
		}
		if err != nil {
			log.Error("Cannot read entry: %v", err)
			res.Stats.Failed++
			res.Errors = multierror.Append(res.Errors, err)
			continue
		}
		res.Stats.Total++
		log.Info("[%d] %s", res.Stats.Total, h.Name())

		out, err := r.process(h)
		switch out {
		case outcomeRenamed:
			res.Stats.Renamed++
		case outcomeSkipped:
			res.Stats.Skipped++
		case outcomeUnchanged:
			res.Stats.Unchanged++
		case outcomeInvalid:
			res.Stats.Invalid++
		case outcomeFailed:
			res.Stats.Failed++
		}
		if err != nil {
			res.Errors = multierror.Append(res.Errors, err)
		}
	}

	if res.Errors != nil {
		res.Errors.ErrorFormat = formatProblems
	}
	res.Report = r.recorder.Export()
	logSummary(job, log, &res.Stats)
	return res, nil
}

// process handles one candidate: decode → filter → encode → validate →
// rename → record.
func (r *runner) process(h files.Handle) (outcome, error) {
	name := h.Name()

	// --- Decode ---
	parts, err := naming.Decode(name, r.job.Separator)
	if err != nil {
		r.log.Warn("Skip (cannot decode): %v", err)
		return outcomeInvalid, &DecodeError{Name: name, Err: err}
	}
	r.log.Debug("  parts: %s", display.FormatParts(parts))

	// --- Filter ---
	skip, err := r.job.Filter.ShouldSkip(name, parts)
	if err != nil {
		r.log.Warn("Skip (filter): %v", err)
		return outcomeInvalid, &DecodeError{Name: name, Err: err}
	}
	if skip {
		r.log.Info("  skipped: %s", r.job.Filter.Describe())
		return outcomeSkipped, nil
	}

	// --- Encode ---
	target, err := r.job.Template.Encode(parts)
	if err != nil {
		r.log.Warn("Skip (template): %v", err)
		return outcomeInvalid, &DecodeError{Name: name, Err: err}
	}
	if target == name {
		r.log.Info("  unchanged")
		return outcomeUnchanged, nil
	}

	// --- Validate target ---
	if err := validateTarget(target); err != nil {
		r.log.Error("  invalid target %q", target)
		return outcomeFailed, &RenameError{Name: name, Target: target, Err: err}
	}
	targetPath := h.Sibling(target)
	exists, err := afero.Exists(r.fs, targetPath)
	if err != nil {
		r.log.Error("  cannot check target %s: %v", target, err)
		return outcomeFailed, &RenameError{Name: name, Target: target, Err: err}
	}
	if exists {
		r.log.Warn("  target exists: %s", target)
		return outcomeFailed, &RenameError{Name: name, Target: target, Err: ErrTargetExists}
	}
	if owner, ok := r.ledger.Claim(h.Path(), targetPath); !ok {
		r.log.Warn("  target already claimed by %s", filepath.Base(owner))
		return outcomeFailed, &RenameError{Name: name, Target: target, Err: ErrTargetExists}
	}

	after, err := naming.Decode(target, r.job.Separator)
	if err != nil {
		r.ledger.Release(targetPath)
		return outcomeInvalid, &DecodeError{Name: target, Err: err}
	}
	rec := Record{
		Before: State{Filename: name, Attrs: parts},
		After:  State{Filename: target, Attrs: after},
	}

	// --- Dry-run ---
	if r.job.DryRun {
		r.log.Success("[DRY] Would rename %s", display.FormatRename(name, target))
		r.recorder.Append(rec)
		return outcomeRenamed, nil
	}

	// --- Rename ---
	renamed, err := h.Rename(r.fs, target)
	if err != nil {
		r.ledger.Release(targetPath)
		r.log.Error("  rename failed: %v", err)
		return outcomeFailed, &RenameError{Name: name, Target: target, Err: err}
	}
	rec.After.Filename = renamed.Name()
	r.recorder.Append(rec)
	r.log.Success("  -> %s", renamed.Name())
	return outcomeRenamed, nil
}

// validateTarget rejects names that would leave the directory or do not
// name a file at all.
func validateTarget(name string) error {
	switch {
	case strings.TrimSpace(name) == "", name == ".", name == "..":
		return ErrInvalidTarget
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return ErrInvalidTarget
	case strings.ContainsRune(name, 0):
		return ErrInvalidTarget
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(job *Job, log *logging.Logger, runID string) {
	log.Info("Run %s", runID)
	log.Info("Directory: %s", job.Dir)
	log.Info("Pattern: %s", job.Pattern)
	log.Info("Template: %s (separator %q)", job.Template, job.Separator)
	log.Info("Filter: %s", job.Filter.Describe())
	if job.DryRun {
		log.Warn("Dry run: no files will be renamed")
	}
}

func logSummary(job *Job, log *logging.Logger, s *RunStats) {
	verb := "renamed"
	if job.DryRun {
		verb = "would rename"
	}
	log.Info("Processed %s: %d %s, %d skipped, %d unchanged",
		display.FormatCount(s.Total, "file"), s.Renamed, verb, s.Skipped, s.Unchanged)
	if s.Problems() > 0 {
		log.Warn("%d invalid, %d failed", s.Invalid, s.Failed)
	}
}
