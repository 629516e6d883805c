package config

// This file builds the cobra root command and registers its flags.
// Flag names double as viper keys, so the same name works in a config file
// and (upper-cased, dashes as underscores, PARTNAME_ prefix) in the environment.

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys. Each one is also the long flag name.
const (
	keyDirectory   = "directory"
	keyPattern     = "pattern"
	keyTemplate    = "template"
	keySeparator   = "separator"
	keyFilter      = "filter"
	keyFilterMode  = "filter-mode"
	keyReport      = "report"
	keyDryRun      = "dry-run"
	keyInteractive = "interactive"
	keyCheck       = "check"
	keyVerbose     = "verbose"
	keyColor       = "color"
	keyNoColor     = "no-color"
	keyLog         = "log"
	keyConfig      = "config"
)

// RunFunc receives the fully loaded and validated configuration.
type RunFunc func(cmd *cobra.Command, cfg *Config) error

// NewCommand returns the root command. Loading happens inside RunE so that
// --help and --version never touch the config file or prompt.
func NewCommand(version string, run RunFunc) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "partname [flags] [directory]",
		Short: "Rename files by reordering the parts of their names",
		Long: `partname splits every matching filename in a directory on a separator,
reorders the parts with a positional template such as {2}_{0}_{1}.pdf,
and renames the file. A filter can veto individual files:

  substring mode  "j 3, draft 1"  skip when part 3 contains "j" or part 1
                                  contains "draft" (case-insensitive,
                                  1-based, -1 is the last part)
  regex mode      "inv_.*\.pdf$"  rename only names the expression matches
                                  from their first character

A JSON report of every rename is written when at least one file changed.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v, cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	defineFlags(cmd.Flags())
	return cmd
}

// defineFlags registers every flag with its default from DefaultConfig.
func defineFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	// Job
	fs.String(keyDirectory, d.Directory, "Directory to process (same as the positional argument)")
	fs.StringP(keyPattern, "p", d.SearchPattern, "Glob selecting files in the directory")
	fs.StringP(keyTemplate, "t", d.Template, "Rename template; {i} is the i-th part, zero-based")
	fs.StringP(keySeparator, "s", d.Separator, "Separator splitting the filename stem into parts")
	fs.StringP(keyFilter, "f", d.FilterSpec, `Filter specification ("<substring> <index>" pairs, or a regex matched from the start of the name); "-" disables filtering`)
	fs.String(keyFilterMode, string(d.FilterMode), "Filter mode: substring | regex")

	// Output & behavior
	fs.StringP(keyReport, "r", d.ReportPath, "JSON report path")
	fs.BoolP(keyDryRun, "d", false, "Preview only; do not rename")
	fs.BoolP(keyInteractive, "i", false, "Prompt for directory, patterns, separator and filter")
	fs.BoolP(keyCheck, "c", false, "Run preflight diagnostics and exit")

	// Display
	fs.String(keyColor, string(d.ColorMode), "Colored logs: auto | always | never")
	fs.Bool(keyNoColor, false, "Same as --color=never")
	fs.BoolP(keyVerbose, "v", false, "Verbose output")
	fs.StringP(keyLog, "l", "", "Append logs to file")
	fs.String(keyConfig, "", "Config file (default: partname.{yaml,toml,json} in . or $HOME)")
}
