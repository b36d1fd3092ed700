package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/config"
	"github.com/doITmagic/lsrc2gen/internal/logger"
)

var version = "dev"

// app carries the state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lsrc2gen",
		Short: "Generate a Python client for the LimeSurvey RemoteControl 2 API",
		Long: `lsrc2gen scrapes the public method signatures and doc comments of the
LimeSurvey RemoteControl 2 PHP handler and renders a Python client module.

Available commands:
  download - Fetch remotecontrol_handle.php from the LimeSurvey repository
  generate - Render the Python client from a local PHP source
  parse    - Print the extracted descriptors as JSON
  watch    - Regenerate the client whenever the PHP source changes
  serve    - Run an MCP server on stdio exposing parse and generate tools

Examples:
  lsrc2gen download                 # Writes lsrc2source.php
  lsrc2gen generate                 # Writes lsrc2client.py
  lsrc2gen generate -o - > rc.py    # Client on stdout`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "lsrc2gen.yaml", "Path to the configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Emit JSON logs on stderr")

	root.AddCommand(
		newDownloadCmd(a),
		newGenerateCmd(a),
		newParseCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.WithHint(err, "check "+a.configPath+" or the LSRC2_* environment variables")
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logJSON {
		cfg.Logging.Format = "json"
	}

	log, err := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.cfg = cfg
	a.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
