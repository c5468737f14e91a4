// Package app wires the application together: logger, model registration,
// parameter-file loading, and the run lifecycle.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/config"
	"github.com/aguspesce/aspect/internal/ctxlog"
	"github.com/aguspesce/aspect/internal/simulator"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ParamsPath is the path to the user's parameter file. Empty is allowed
	// only in describe mode.
	ParamsPath string

	// Describe makes the app print the generated parameter documentation
	// instead of running.
	Describe bool

	LogFormat string
	LogLevel  string
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	registries *fluidpressure.Registries
	config     *config.Model
}

// NewApp is the constructor for the main application. It registers the
// compiled-in boundary models, freezes the registries, and loads the
// parameter file. Registration happens strictly before any configuration is
// read; a duplicate selection name means the binary is misconfigured, so it
// panics like any other critical startup error.
func NewApp(outW io.Writer, appConfig *Config, modules ...fluidpressure.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	registries := fluidpressure.NewRegistries()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(registries); err != nil {
			panic(fmt.Errorf("model registration failed: %w", err))
		}
	}
	registries.FreezeAll()
	logger.Debug("All boundary models registered.", "count", len(modules))

	app := &App{
		outW:       outW,
		logger:     logger,
		registries: registries,
	}

	if appConfig.Describe {
		return app
	}

	cfgModel, err := config.Load(ctx, appConfig.ParamsPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	app.config = cfgModel
	logger.Debug("Configuration loaded.", "file", appConfig.ParamsPath)

	return app
}

// Registries returns the application's model registries. This is primarily
// for testing.
func (a *App) Registries() *fluidpressure.Registries {
	return a.registries
}

// ConfigModel returns the loaded run configuration. This is primarily for
// testing.
func (a *App) ConfigModel() *config.Model {
	return a.config
}

// Run executes the main application logic based on the provided
// configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.Describe {
		return a.Describe(a.outW)
	}

	sim, err := simulator.New(ctx, a.config, a.registries)
	if err != nil {
		return fmt.Errorf("failed to set up simulation: %w", err)
	}
	defer sim.Close(ctx)

	if err := sim.Run(ctx); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
