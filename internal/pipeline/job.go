package pipeline

import (
	"github.com/backmassage/partname/internal/config"
	"github.com/backmassage/partname/internal/files"
	"github.com/backmassage/partname/internal/filter"
	"github.com/backmassage/partname/internal/naming"
)

// Job is a validated, compiled rename configuration. Building one touches
// no files, so every configuration mistake surfaces before the first rename.
type Job struct {
	Dir       string
	Pattern   string
	Separator string
	Template  naming.Template
	Filter    filter.Filter
	DryRun    bool
}

// Compile validates cfg and compiles its template, filter and search
// pattern. Every failure is a *config.Error.
func Compile(cfg *config.Config) (*Job, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := files.CompilePattern(cfg.SearchPattern); err != nil {
		return nil, &config.Error{Field: "search pattern", Err: err}
	}

	tmpl, err := naming.ParseTemplate(cfg.Template)
	if err != nil {
		return nil, &config.Error{Field: "template", Err: err}
	}

	f, err := CompileFilter(cfg)
	if err != nil {
		return nil, &config.Error{Field: "filter", Err: err}
	}

	return &Job{
		Dir:       cfg.Directory,
		Pattern:   cfg.SearchPattern,
		Separator: cfg.Separator,
		Template:  tmpl,
		Filter:    f,
		DryRun:    cfg.DryRun,
	}, nil
}

// CompileFilter builds the filter selected by cfg.FilterMode. A disabled
// filter spec yields filter.None.
func CompileFilter(cfg *config.Config) (filter.Filter, error) {
	if cfg.FilterDisabled() {
		return filter.None{}, nil
	}
	if cfg.FilterMode == config.FilterRegex {
		return filter.ParsePattern(cfg.FilterSpec)
	}
	return filter.ParseSubstrings(cfg.FilterSpec)
}
