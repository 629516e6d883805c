// Package check provides the --check diagnostics and the pre-run
// Preflight validation: directory access, search pattern, template, filter
// and a preview of what a run would do.
package check

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/backmassage/partname/internal/config"
	"github.com/backmassage/partname/internal/display"
	"github.com/backmassage/partname/internal/files"
	"github.com/backmassage/partname/internal/naming"
	"github.com/backmassage/partname/internal/pipeline"
	"github.com/spf13/afero"
)

// ErrDirNotWritable is returned by Preflight when renames cannot happen in
// the target directory.
var ErrDirNotWritable = errors.New("directory is not writable")

// previewLimit caps how many would-be renames Run prints.
const previewLimit = 5

// Logger is the minimal logging interface needed by Run.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Run runs the --check flow and reports whether every check passed. It is
// informational only: it never renames and keeps going after a failure.
func Run(fs afero.Fs, cfg *config.Config, log Logger) bool {
	log.Info("=== Preflight Check ===")

	ok := checkDirectory(fs, cfg, log)
	ok = checkPattern(cfg, log) && ok
	ok = checkTemplate(cfg, log) && ok
	ok = checkFilter(cfg, log) && ok
	ok = checkReportPath(fs, cfg, log) && ok

	if !ok {
		log.Error("Preflight failed")
		return false
	}
	previewCandidates(fs, cfg, log)
	log.Success("Preflight passed")
	return true
}

// Preflight is the pre-run validation: the directory must exist and, unless
// this is a dry run, accept new files.
func Preflight(fs afero.Fs, cfg *config.Config) error {
	abs, err := files.ResolveDir(fs, cfg.Directory)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}
	if err := probeWritable(fs, abs); err != nil {
		return fmt.Errorf("%s: %w (%v)", abs, ErrDirNotWritable, err)
	}
	return nil
}

// checkDirectory verifies the directory exists and is writable.
func checkDirectory(fs afero.Fs, cfg *config.Config, log Logger) bool {
	abs, err := files.ResolveDir(fs, cfg.Directory)
	if err != nil {
		log.Error("Directory: %v", err)
		return false
	}
	log.Success("Directory: %s", abs)

	if err := probeWritable(fs, abs); err != nil {
		if cfg.DryRun {
			log.Warn("Directory is not writable (ok for a dry run): %v", err)
			return true
		}
		log.Error("Directory is not writable: %v", err)
		return false
	}
	log.Success("Directory is writable")
	return true
}

func checkPattern(cfg *config.Config, log Logger) bool {
	if _, err := files.CompilePattern(cfg.SearchPattern); err != nil {
		log.Error("Pattern: %v", err)
		return false
	}
	log.Success("Pattern: %s", cfg.SearchPattern)
	return true
}

// checkTemplate parses the template and reports how many parts a name needs.
func checkTemplate(cfg *config.Config, log Logger) bool {
	tmpl, err := naming.ParseTemplate(cfg.Template)
	if err != nil {
		log.Error("Template: %v", err)
		return false
	}
	if tmpl.MaxIndex() < 0 {
		log.Warn("Template %s uses no parts; every file gets the same name", tmpl)
	} else {
		log.Success("Template: %s (names need at least %s)", tmpl,
			display.FormatCount(tmpl.MaxIndex()+1, "part"))
	}
	return true
}

func checkFilter(cfg *config.Config, log Logger) bool {
	f, err := pipeline.CompileFilter(cfg)
	if err != nil {
		log.Error("Filter: %v", err)
		return false
	}
	log.Success("Filter: %s", f.Describe())
	return true
}

// checkReportPath verifies the report's directory exists or can be created
// and warns when an earlier report would be replaced.
func checkReportPath(fs afero.Fs, cfg *config.Config, log Logger) bool {
	if cfg.DryRun {
		log.Info("Report: not written in a dry run")
		return true
	}
	dir := filepath.Dir(cfg.ReportPath)
	isDir, err := afero.DirExists(fs, dir)
	if err != nil {
		log.Error("Report directory %s: %v", dir, err)
		return false
	}
	if !isDir {
		log.Warn("Report directory %s does not exist yet; it will be created", dir)
		return true
	}
	if exists, _ := afero.Exists(fs, cfg.ReportPath); exists {
		prev, err := pipeline.ReadReport(fs, cfg.ReportPath)
		if err != nil {
			log.Warn("Report %s exists but cannot be read (%v); a run will overwrite it", cfg.ReportPath, err)
			return true
		}
		log.Warn("Report %s holds %s from an earlier run; a run that renames anything replaces it",
			cfg.ReportPath, display.FormatCount(len(prev), "rename"))
		return true
	}
	log.Success("Report: %s", cfg.ReportPath)
	return true
}

// previewCandidates counts matching files and shows the first few renames
// a run would perform.
func previewCandidates(fs afero.Fs, cfg *config.Config, log Logger) {
	c := *cfg
	c.DryRun = true
	job, err := pipeline.Compile(&c)
	if err != nil {
		log.Error("Cannot compile job: %v", err)
		return
	}
	seq, err := files.Candidates(fs, job.Dir, job.Pattern)
	if err != nil {
		log.Error("Candidates: %v", err)
		return
	}

	var total, shown, skipped, invalid int
	for h, err := range seq {
		if err != nil {
			log.Warn("Unreadable entry: %v", err)
			continue
		}
		total++
		parts, err := naming.Decode(h.Name(), job.Separator)
		if err != nil {
			invalid++
			continue
		}
		skip, err := job.Filter.ShouldSkip(h.Name(), parts)
		if err != nil {
			invalid++
			continue
		}
		if skip {
			skipped++
			continue
		}
		target, err := job.Template.Encode(parts)
		if err != nil {
			invalid++
			log.Debug("%s: %v", h.Name(), err)
			continue
		}
		if shown < previewLimit && target != h.Name() {
			log.Info("  %s", display.FormatRename(h.Name(), target))
			shown++
		}
	}
	log.Info("Candidates: %s (%d skipped by filter, %d cannot be decoded)",
		display.FormatCount(total, "file"), skipped, invalid)
}

// probeWritable creates and removes a temporary file in dir.
func probeWritable(fs afero.Fs, dir string) error {
	f, err := afero.TempFile(fs, dir, ".partname-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return fs.Remove(name)
}
