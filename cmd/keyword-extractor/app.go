package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Veraticus/keyword-extractor/pkg/config"
	"github.com/Veraticus/keyword-extractor/pkg/document"
	"github.com/Veraticus/keyword-extractor/pkg/interfaces"
	"github.com/Veraticus/keyword-extractor/pkg/keyword"
	"github.com/Veraticus/keyword-extractor/pkg/reload"
	"github.com/Veraticus/keyword-extractor/pkg/report"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Holder    *reload.Holder
	Extractor interfaces.Extractor
	Reporter  report.Reporter
}

// NewDependencies creates all dependencies with the given configuration.
// Results are written to out.
func NewDependencies(cfg *config.Config, out io.Writer, logger *zap.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	// Build the initial matcher; it is frozen once stored in the holder
	m, err := matcherBuilder(cfg)()
	if err != nil {
		return nil, err
	}
	deps.Holder = reload.NewHolder(m)
	deps.Extractor = deps.Holder
	logger.Debug("keyword matcher built",
		zap.Int("keywords", m.Len()),
		zap.Bool("case_sensitive", m.CaseSensitive()))

	deps.Reporter, err = report.NewReporter(cfg.Format, out)
	if err != nil {
		return nil, err
	}

	return deps, nil
}

// matcherBuilder returns a builder that reads the configured keywords and
// keyword files from scratch on every call.
func matcherBuilder(cfg *config.Config) reload.Builder {
	return func() (*keyword.Matcher, error) {
		keywords, err := cfg.AllKeywords()
		if err != nil {
			return nil, fmt.Errorf("failed to load keywords: %w", err)
		}
		m := keyword.New(cfg.CaseSensitive)
		m.AddKeywords(keywords...)
		return m, nil
	}
}

// Application represents the main application
type Application struct {
	deps      *Dependencies
	extractor interfaces.Extractor
	keywords  interfaces.KeywordSource
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	extractor := deps.Extractor
	if extractor == nil {
		extractor = deps.Holder
	}
	return &Application{
		deps:      deps,
		extractor: extractor,
		keywords:  deps.Holder,
	}
}

// Extract scans every input and reports the keywords found in each document.
func (a *Application) Extract(paths []string, stdin io.Reader) error {
	lines := a.deps.Config.Mode == config.ModeLines

	err := document.Each(paths, stdin, func(name string, r io.Reader) error {
		docs, err := document.Read(name, r, lines)
		if err != nil {
			return err
		}
		a.deps.Logger.Debug("scanning input", zap.String("input", name), zap.Int("documents", len(docs)))
		for _, d := range docs {
			if err := a.report(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return a.deps.Reporter.Flush()
}

// Watch scans inputs line by line until they end or ctx is cancelled. When
// keyword files are configured they are watched and the matcher is rebuilt
// whenever one changes.
func (a *Application) Watch(ctx context.Context, paths []string, stdin io.Reader) error {
	if files := a.deps.Config.KeywordFiles; len(files) > 0 {
		w, err := reload.NewWatcher(a.deps.Holder, matcherBuilder(a.deps.Config), files, a.deps.Logger)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
		a.deps.Logger.Info("watching keyword files", zap.Strings("files", files))
	}

	err := document.Each(paths, stdin, func(name string, r io.Reader) error {
		return document.Scan(ctx, name, r, a.report)
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	return a.deps.Reporter.Flush()
}

// PrintKeywords writes the registered keywords, one per line.
func (a *Application) PrintKeywords(w io.Writer) error {
	for _, kw := range a.keywords.Keywords() {
		if _, err := fmt.Fprintln(w, kw); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) report(d document.Document) error {
	found := a.extractor.ExtractKeywords(d.Text)
	if found.Len() > 0 {
		a.deps.Logger.Debug("keywords found",
			zap.String("document", d.Name),
			zap.Int("line", d.Line),
			zap.Int("count", found.Len()))
	}
	return a.deps.Reporter.Report(report.Result{
		Document: d.Name,
		Line:     d.Line,
		Keywords: found.Sorted(),
	})
}
