package config

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// ErrNotInteractive is returned by [Prompt] when stdin is not a terminal.
var ErrNotInteractive = errors.New("interactive mode needs a terminal on stdin")

// askFunc and stdinIsTerminal are swapped out in tests.
var (
	askFunc         = survey.Ask
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// promptAnswers receives the survey answers; tags match the question names.
type promptAnswers struct {
	Directory string `survey:"directory"`
	Pattern   string `survey:"pattern"`
	Template  string `survey:"template"`
	Separator string `survey:"separator"`
	Filter    string `survey:"filter"`
}

// Prompt asks for the job settings one by one, offering the current cfg
// values as defaults, and writes the answers back into cfg.
func Prompt(cfg *Config) error {
	if !stdinIsTerminal() {
		return &Error{Field: "interactive", Err: ErrNotInteractive}
	}

	filterHelp := `Comma-separated "<substring> <index>" pairs, e.g. "this 1, the 3": skip files whose` +
		` first part contains "this" or third part contains "the" (ignoring case). Enter "-" for no filter.`
	if cfg.FilterMode == FilterRegex {
		filterHelp = `Regular expression; only filenames matching it are renamed. Enter "-" for no filter.`
	}

	questions := []*survey.Question{
		{
			Name:     "directory",
			Prompt:   &survey.Input{Message: "Directory path:", Default: cfg.Directory},
			Validate: survey.Required,
		},
		{
			Name:     "pattern",
			Prompt:   &survey.Input{Message: "Search pattern:", Default: cfg.SearchPattern},
			Validate: survey.Required,
		},
		{
			Name:     "template",
			Prompt:   &survey.Input{Message: "Rename template:", Default: cfg.Template},
			Validate: survey.Required,
		},
		{
			Name:     "separator",
			Prompt:   &survey.Input{Message: "Filename separator:", Default: cfg.Separator},
			Validate: survey.Required,
		},
		{
			Name:   "filter",
			Prompt: &survey.Input{Message: "Filter:", Default: cfg.FilterSpec, Help: filterHelp},
		},
	}

	var a promptAnswers
	if err := askFunc(questions, &a); err != nil {
		return err
	}

	cfg.Directory = NormalizeDirArg(a.Directory)
	cfg.SearchPattern = a.Pattern
	cfg.Template = a.Template
	cfg.Separator = a.Separator
	cfg.FilterSpec = a.Filter
	return nil
}
