package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Veraticus/keyword-extractor/pkg/config"
)

// watchGrace bounds how long an interrupted watch may take to flush.
const watchGrace = 2 * time.Second

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every command
type options struct {
	configPath    string
	keywords      []string
	keywordFiles  []string
	caseSensitive bool
	lines         bool
	format        string
	debug         bool
}

// bindFlags registers the shared flags on fs
func bindFlags(fs *flag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringArrayVarP(&o.keywords, "keyword", "k", nil, "Keyword to extract (repeatable)")
	fs.StringArrayVarP(&o.keywordFiles, "keywords-file", "f", nil, "File with one keyword per line (repeatable)")
	fs.BoolVarP(&o.caseSensitive, "case-sensitive", "s", false, "Match keywords case-sensitively")
	fs.BoolVar(&o.lines, "lines", false, "Treat every input line as a separate document (at most 4 MiB per line)")
	fs.StringVarP(&o.format, "format", "o", "", "Output format: text, json or yaml")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
}

// resolve loads the configuration and applies flags on top of it. Flags
// only override settings that were set explicitly.
func (o *options) resolve(fs *flag.FlagSet) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.Keywords = append(cfg.Keywords, o.keywords...)
	cfg.KeywordFiles = append(cfg.KeywordFiles, o.keywordFiles...)
	if fs.Changed("case-sensitive") {
		cfg.CaseSensitive = o.caseSensitive
	}
	if fs.Changed("lines") {
		cfg.Mode = config.ModeDocument
		if o.lines {
			cfg.Mode = config.ModeLines
		}
	}
	if fs.Changed("format") {
		switch o.format {
		case config.FormatText, config.FormatJSON, config.FormatYAML:
			cfg.Format = o.format
		default:
			return nil, fmt.Errorf("unknown format %q (use text, json or yaml)", o.format)
		}
	}
	if o.debug {
		cfg.Debug = true
	}

	return cfg, nil
}

// newLogger returns a development logger in debug mode and a quiet
// production logger otherwise. Both write to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return zcfg.Build()
}

// runWatch runs app.Watch until the input ends or ctx is cancelled. A blocked
// read on stdin does not observe ctx, so on cancellation stdin is closed when
// possible and the watch gets watchGrace to stop its watcher and flush.
func runWatch(ctx context.Context, app *Application, args []string, stdin io.Reader) error {
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx, args, stdin) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	if c, ok := stdin.(io.Closer); ok {
		_ = c.Close()
	}
	select {
	case err := <-done:
		return err
	case <-time.After(watchGrace):
		app.deps.Logger.Warn("watch did not stop in time, buffered results may be lost")
		return nil
	}
}

// newRootCmd builds the command tree reading input from stdin and writing
// results to stdout.
func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}

	// setup resolves configuration and builds the application for a command
	setup := func(cmd *cobra.Command) (*Application, func(), error) {
		cfg, err := opts.resolve(cmd.Flags())
		if err != nil {
			return nil, nil, err
		}
		logger, err := newLogger(cfg.Debug)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create logger: %w", err)
		}
		deps, err := NewDependencies(cfg, stdout, logger)
		if err != nil {
			_ = logger.Sync()
			return nil, nil, err
		}
		return NewApplication(deps), func() { _ = logger.Sync() }, nil
	}

	runExtract := func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return app.Extract(args, stdin)
	}

	rootCmd := &cobra.Command{
		Use:   "keyword-extractor [flags] [file ...]",
		Short: "Extract whole-word keyword matches from documents",
		Long: "keyword-extractor scans documents once and reports which registered keywords\n" +
			"occur as whole words. Files are read in order; with no files, or the file \"-\",\n" +
			"standard input is read.\n\n" +
			"Configuration file: ~/.config/keyword-extractor/config.yaml",
		Args:          cobra.ArbitraryArgs,
		RunE:          runExtract,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	bindFlags(rootCmd.PersistentFlags(), opts)

	extractCmd := &cobra.Command{
		Use:   "extract [flags] [file ...]",
		Short: "Report the keywords found in each document",
		Args:  cobra.ArbitraryArgs,
		RunE:  runExtract,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [flags] [file ...]",
		Short: "Scan input line by line, reloading keyword files when they change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, app, args, stdin)
		},
	}

	keywordsCmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the registered keywords after case folding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.PrintKeywords(stdout)
		},
	}

	rootCmd.AddCommand(extractCmd, watchCmd, keywordsCmd)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	return rootCmd
}
