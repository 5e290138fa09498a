package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
	"github.com/alexisbeaulieu97/swatchbook/internal/application/styles"
	"github.com/alexisbeaulieu97/swatchbook/internal/config"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/document"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/lospec"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/metrics"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/notify"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/tui"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config       *config.Config
	Logger       ports.Logger
	Events       ports.EventPublisher
	Metrics      *metrics.Collector
	Document     document.Document
	Console      *notify.Console
	Bridge       *tui.Bridge
	Materializer *styles.Materializer
	Pipeline     *importer.Pipeline

	logFile io.Closer
}

// loadApp reads configuration and wires every service. interactive routes
// notifications to the panel instead of the console and keeps logs off
// the terminal.
func loadApp(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	app := &AppContext{
		Config:  cfg,
		Metrics: metrics.NewCollector(),
		Console: notify.NewConsole(notify.Options{Out: cmd.OutOrStdout()}),
		Bridge:  &tui.Bridge{},
	}

	if err := app.initLogger(cmd, flags, interactive); err != nil {
		return nil, err
	}
	app.Events = events.NewLoggingPublisher(app.Logger.With("component", "events"))

	doc, err := document.Open(cfg.Document.Driver, cfg.Document.Path, flags.dryRun, app.Logger.With("component", "document"))
	if err != nil {
		app.closeLog()
		return nil, fmt.Errorf("open style document: %w", err)
	}
	app.Document = doc

	var notifier ports.Notifier = app.Console
	if interactive {
		notifier = app.Bridge
	}
	matOpts := styles.Options{
		Document:  doc,
		Notifier:  notifier,
		Publisher: app.Events,
		Logger:    app.Logger,
		Metrics:   app.Metrics,
	}
	if cfg.NotifyOnSuccess {
		matOpts.OnSuccess = styles.NotifyOnSuccess(notifier)
	}
	app.Materializer, err = styles.NewMaterializer(matOpts)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	client := lospec.NewClient(cfg.Source.BaseURL,
		lospec.WithTimeout(cfg.Source.Timeout),
		lospec.WithLogger(app.Logger),
		lospec.WithMetrics(app.Metrics),
	)
	app.Pipeline, err = importer.NewPipeline(importer.PipelineOptions{
		Fetcher:      client,
		Materializer: app.Materializer,
		Publisher:    app.Events,
		Logger:       app.Logger,
		Metrics:      app.Metrics,
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

func (a *AppContext) initLogger(cmd *cobra.Command, flags *rootFlags, interactive bool) error {
	level := a.Config.Log.Level
	if flags.verbose {
		level = "debug"
	}

	var writer io.Writer = cmd.ErrOrStderr()
	human := true
	switch {
	case a.Config.Log.File != "":
		f, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		writer = f
		human = false
	case interactive:
		writer = io.Discard
	}

	logger, err := logging.New(logging.Options{
		Writer:        writer,
		Level:         level,
		HumanReadable: human,
		Layer:         "presentation",
		Component:     "cli",
	})
	if err != nil {
		a.closeLog()
		return err
	}
	a.Logger = logger
	return nil
}

// CommandContext derives a context carrying a fresh correlation ID and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	return ctx, a.Logger.With("component", component)
}

// NewOrchestrator builds the interactive import state machine, reporting
// to the panel bridge.
func (a *AppContext) NewOrchestrator() (*importer.Orchestrator, error) {
	return importer.New(importer.Options{
		Pipeline:      a.Pipeline,
		Observer:      a.Bridge.Observe,
		Logger:        a.Logger,
		DisplayWindow: a.Config.UI.DisplayWindow,
		ErrorDismiss:  a.Config.UI.ErrorDismiss,
	})
}

// Close releases the document, writes the metrics textfile when
// configured, and closes the log file.
func (a *AppContext) Close() error {
	var errs []error
	if a.Document != nil {
		if err := a.Document.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close style document: %w", err))
		}
	}
	if a.Config != nil && a.Config.Metrics.File != "" && a.Metrics != nil {
		if err := a.Metrics.WriteTextfile(a.Config.Metrics.File); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	a.closeLog()
	return errors.Join(errs...)
}

func (a *AppContext) closeLog() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// reportedError marks a failure already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
