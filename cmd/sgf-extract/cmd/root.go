package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mipli/sgf-parser/internal/config"
)

var (
	cfgFile  string
	verbose  bool
	jsonOut  bool
	quiet    bool
	failFast bool
)

var rootCmd = &cobra.Command{
	Use:   "sgf-extract [files...]",
	Short: "Parse SGF game records and report diagnostics",
	Long: `sgf-extract parses SGF (Smart Game Format) files into game trees and
reports their structure: node and branch counts plus every property that
is unrecognized or failed validation.

A structural failure (unbalanced delimiters, a value with no identifier)
aborts that file; unrecognized and invalid properties never do.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sgf-extract: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON summaries")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-property diagnostics")
	rootCmd.PersistentFlags().BoolVar(&failFast, "fail-fast", false, "stop at the first file that fails to parse")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	proc := &Processor{
		cfg:    cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
	}
	return proc.Run(args)
}

// applyFlags lets explicit command-line flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("json") {
		cfg.JSON = jsonOut
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = quiet
	}
	if cmd.Flags().Changed("fail-fast") {
		cfg.FailFast = failFast
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

// newLogger builds a zap logger from the configuration: console encoding
// to stderr, optionally teed to a log file.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := parseLevel(cfg.LogLevel)
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), level),
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
