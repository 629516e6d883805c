// Command partname is the CLI entrypoint for the partname batch renamer.
//
// It loads configuration (flags, environment, config file, optional
// prompts), then either runs the preflight diagnostics (--check) or the
// rename pipeline, and finally writes the JSON report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/partname/internal/check"
	"github.com/backmassage/partname/internal/config"
	"github.com/backmassage/partname/internal/display"
	"github.com/backmassage/partname/internal/logging"
	"github.com/backmassage/partname/internal/pipeline"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds the root command and returns the process exit code.
func run(args []string) int {
	code := 0
	cmd := config.NewCommand(version, func(cmd *cobra.Command, cfg *config.Config) error {
		code = execute(cmd.Context(), afero.NewOsFs(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	})
	cmd.SetArgs(args)

	// Phase 1: Bootstrap. The logger doesn't exist until the config is
	// loaded, so load errors go directly to stderr.
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "partname: %v\n", err)
		return 1
	}
	return code
}

// execute runs one configured invocation against fs. Console output goes to
// out, errors to errOut.
func execute(ctx context.Context, fs afero.Fs, cfg *config.Config, out, errOut io.Writer) int {
	log, err := logging.New(cfg, out, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "partname: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner(out, version)
	if cfg.ConfigFile != "" {
		log.Debug("Config file: %s", cfg.ConfigFile)
	}

	if cfg.CheckOnly {
		if !check.Run(fs, cfg, log) {
			return 1
		}
		return 0
	}

	job, err := pipeline.Compile(cfg)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := check.Preflight(fs, cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== partname v%s (%s) ===", version, commit)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed and no report written")
	}

	// Phase 3: Signal handling. Cancel on SIGINT/SIGTERM so the run stops
	// between files and the report still covers what was renamed.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run pipeline (select → decode → filter → rename → record).
	res, err := pipeline.Run(ctx, fs, job, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 5: Persist the report.
	if !cfg.DryRun {
		written, err := pipeline.WriteReport(fs, cfg.ReportPath, res.Report)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		if written {
			log.Success("Report: %s (%s)", cfg.ReportPath, display.FormatCount(len(res.Report), "rename"))
		} else {
			log.Info("Nothing renamed, no report written")
		}
	}

	// Phase 6: Per-file problems. Decode skips are reported but leave the
	// exit code alone; anything else fails the run.
	if err := res.Err(); err != nil {
		if failed(err) {
			log.Error("%v", err)
			return 1
		}
		log.Warn("%v", err)
	}
	return 0
}

// failed reports whether err holds a problem other than a decode skip.
func failed(err error) bool {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return err != nil
	}
	for _, e := range merr.WrappedErrors() {
		var derr *pipeline.DecodeError
		if !errors.As(e, &derr) {
			return true
		}
	}
	return false
}
