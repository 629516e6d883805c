package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PARTNAME_SEPARATOR.
const EnvPrefix = "PARTNAME"

// configName is the config file base name searched in . and $HOME.
const configName = "partname"

// Load layers defaults, config file, environment and flags (lowest to
// highest precedence), applies the positional directory argument, runs the
// interactive prompts when requested, and validates the result.
func Load(v *viper.Viper, flags *pflag.FlagSet, args []string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := fromViper(v)
	if !v.IsSet(keyFilter) {
		cfg.FilterSpec = DefaultFilterFor(cfg.FilterMode)
	}
	if len(args) > 0 {
		cfg.Directory = args[0]
	}
	cfg.Directory = NormalizeDirArg(cfg.Directory)

	if cfg.Interactive {
		if err := Prompt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(keyDirectory, d.Directory)
	v.SetDefault(keyPattern, d.SearchPattern)
	v.SetDefault(keyTemplate, d.Template)
	v.SetDefault(keySeparator, d.Separator)
	v.SetDefault(keyFilter, d.FilterSpec)
	v.SetDefault(keyFilterMode, string(d.FilterMode))
	v.SetDefault(keyReport, d.ReportPath)
	v.SetDefault(keyColor, string(d.ColorMode))
}

// readConfigFile reads an explicit --config file (which must exist) or
// searches for partname.* in the working directory and $HOME (optional).
func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return &Error{Field: "config file", Err: err}
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return &Error{Field: "config file", Err: err}
	}
	return nil
}

// fromViper copies resolved values into a Config.
func fromViper(v *viper.Viper) Config {
	cfg := Config{
		Directory:     v.GetString(keyDirectory),
		SearchPattern: v.GetString(keyPattern),
		Template:      v.GetString(keyTemplate),
		Separator:     v.GetString(keySeparator),
		FilterSpec:    v.GetString(keyFilter),
		FilterMode:    FilterMode(strings.ToLower(v.GetString(keyFilterMode))),
		ReportPath:    v.GetString(keyReport),
		DryRun:        v.GetBool(keyDryRun),
		Interactive:   v.GetBool(keyInteractive),
		CheckOnly:     v.GetBool(keyCheck),
		Verbose:       v.GetBool(keyVerbose),
		ColorMode:     ColorMode(strings.ToLower(v.GetString(keyColor))),
		LogFile:       v.GetString(keyLog),
		ConfigFile:    v.ConfigFileUsed(),
	}
	if v.GetBool(keyNoColor) {
		cfg.ColorMode = ColorNever
	}
	return cfg
}
