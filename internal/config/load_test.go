package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns the config it received.
func execute(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var got *Config
	cmd := NewCommand("test", func(_ *cobra.Command, cfg *Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, err
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := execute(t)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Directory = "./files"
	assert.Equal(t, want, *cfg)
}

func TestLoad_FlagsAndPositional(t *testing.T) {
	cfg, err := execute(t,
		"-p", "*-*.txt",
		"-t", "{1}-{0}.txt",
		"-s", "-",
		"-f", "draft 1, old -1",
		"--dry-run",
		"--no-color",
		"/data/in/",
	)
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.Directory)
	assert.Equal(t, "*-*.txt", cfg.SearchPattern)
	assert.Equal(t, "{1}-{0}.txt", cfg.Template)
	assert.Equal(t, "-", cfg.Separator)
	assert.Equal(t, "draft 1, old -1", cfg.FilterSpec)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestLoad_DisableFilter(t *testing.T) {
	cfg, err := execute(t, "--filter", "-")
	require.NoError(t, err)
	assert.True(t, cfg.FilterDisabled())
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("PARTNAME_SEPARATOR", ".")
	t.Setenv("PARTNAME_FILTER_MODE", "REGEX")

	cfg, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Separator)
	assert.Equal(t, FilterRegex, cfg.FilterMode)
	assert.Equal(t, NoFilter, cfg.FilterSpec)
}

func TestLoad_RegexModeDefaultFilter(t *testing.T) {
	cfg, err := execute(t, "--filter-mode", "regex")
	require.NoError(t, err)
	assert.Equal(t, NoFilter, cfg.FilterSpec, "the substring default is not a regex")
	assert.True(t, cfg.FilterDisabled())

	cfg, err = execute(t, "--filter-mode", "regex", "--filter", "inv_")
	require.NoError(t, err)
	assert.Equal(t, "inv_", cfg.FilterSpec)

	cfg, err = execute(t, "--filter-mode", "substring")
	require.NoError(t, err)
	assert.Equal(t, DefaultFilterSpec, cfg.FilterSpec)

	t.Setenv("PARTNAME_FILTER", "j 3")
	cfg, err = execute(t, "--filter-mode", "regex")
	require.NoError(t, err)
	assert.Equal(t, "j 3", cfg.FilterSpec, "an explicit value is kept")
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("PARTNAME_SEPARATOR", ".")

	cfg, err := execute(t, "--separator", "+")
	require.NoError(t, err)
	assert.Equal(t, "+", cfg.Separator)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	content := "directory: /srv/scans\npattern: \"*.pdf\"\ntemplate: \"{1}_{0}.pdf\"\nfilter-mode: regex\nfilter: \"^inv\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := execute(t, "--config", path, "--template", "{0}.pdf")
	require.NoError(t, err)

	assert.Equal(t, "/srv/scans", cfg.Directory)
	assert.Equal(t, "*.pdf", cfg.SearchPattern)
	assert.Equal(t, "{0}.pdf", cfg.Template, "flag must win over file")
	assert.Equal(t, FilterRegex, cfg.FilterMode)
	assert.Equal(t, "^inv", cfg.FilterSpec)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "config file", cerr.Field)
}

func TestLoad_InvalidFilterMode(t *testing.T) {
	_, err := execute(t, "--filter-mode", "fuzzy")

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "filter mode", cerr.Field)
}

func TestLoad_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func stubPrompt(t *testing.T, tty bool, ask func([]*survey.Question, interface{}, ...survey.AskOpt) error) {
	t.Helper()
	origAsk, origTTY := askFunc, stdinIsTerminal
	askFunc = ask
	stdinIsTerminal = func() bool { return tty }
	t.Cleanup(func() {
		askFunc, stdinIsTerminal = origAsk, origTTY
	})
}

func TestPrompt_AppliesAnswers(t *testing.T) {
	var asked []string
	stub := func(qs []*survey.Question, response interface{}, _ ...survey.AskOpt) error {
		for _, q := range qs {
			asked = append(asked, q.Name)
		}
		a := response.(*promptAnswers)
		*a = promptAnswers{
			Directory: "/tmp/scans/",
			Pattern:   "*.pdf",
			Template:  "{1}_{0}.pdf",
			Separator: "_",
			Filter:    "-",
		}
		return nil
	}
	stubPrompt(t, true, stub)

	cfg := DefaultConfig()
	require.NoError(t, Prompt(&cfg))

	assert.Equal(t, []string{"directory", "pattern", "template", "separator", "filter"}, asked)
	assert.Equal(t, "/tmp/scans", cfg.Directory)
	assert.Equal(t, "*.pdf", cfg.SearchPattern)
	assert.Equal(t, "{1}_{0}.pdf", cfg.Template)
	assert.True(t, cfg.FilterDisabled())
}

func TestPrompt_DefaultsComeFromConfig(t *testing.T) {
	stub := func(qs []*survey.Question, _ interface{}, _ ...survey.AskOpt) error {
		in := qs[2].Prompt.(*survey.Input)
		assert.Equal(t, "{0}.txt", in.Default)
		return errors.New("interrupted")
	}
	stubPrompt(t, true, stub)

	cfg := DefaultConfig()
	cfg.Template = "{0}.txt"
	assert.EqualError(t, Prompt(&cfg), "interrupted")
}

func TestPrompt_RequiresTerminal(t *testing.T) {
	stubPrompt(t, false, func([]*survey.Question, interface{}, ...survey.AskOpt) error {
		t.Fatal("ask must not be called without a terminal")
		return nil
	})

	cfg := DefaultConfig()
	err := Prompt(&cfg)
	assert.ErrorIs(t, err, ErrNotInteractive)
}
