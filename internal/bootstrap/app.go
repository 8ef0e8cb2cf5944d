package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/locvowork/daily_agenda/internal/config"
	"github.com/locvowork/daily_agenda/internal/logger"
	"github.com/locvowork/daily_agenda/pkg/agenda"
	"github.com/locvowork/daily_agenda/pkg/simpleexcel"
)

type App struct {
	Config config.EnvConfig
	Layout *agenda.Layout
	// Now supplies the date printed in the title.
	Now func() time.Time
}

func NewApp() *App {
	return &App{
		Config: config.Defaults(),
		Now:    time.Now,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	a.Config = config.DefaultEnvConfig

	// Initialize logging
	if err := logger.InitLogging(a.Config.LOG_FILE_PATH, a.Config.LOG_LEVEL); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.DebugLog(ctx, "Environment variables loaded successfully")

	return a.LoadLayout(ctx)
}

// LoadLayout loads the embedded layout for the configured locale.
func (a *App) LoadLayout(ctx context.Context) error {
	layout, err := agenda.LoadLayout(a.Config.AGENDA_LOCALE)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	a.Layout = layout
	logger.DebugLog(ctx, "Loaded %q layout with %d time slots", a.Config.AGENDA_LOCALE, layout.TimeGrid.Slots)
	return nil
}

// Run builds today's agenda and writes it to the configured output file.
func (a *App) Run(ctx context.Context) error {
	if a.Layout == nil {
		if err := a.LoadLayout(ctx); err != nil {
			return err
		}
	}
	ctx = logger.WithFields(ctx, map[string]string{
		"locale": a.Config.AGENDA_LOCALE,
		"output": a.Config.OUTPUT_FILE_PATH,
	})

	now := a.Now()
	sheet, err := agenda.Build(a.Layout, now)
	if err != nil {
		return fmt.Errorf("failed to build agenda: %w", err)
	}
	rows, cols := sheet.Dimensions()
	logger.DebugLog(ctx, "Built sheet %q with %d rows and %d columns", sheet.Name, rows, cols)

	exporter := simpleexcel.NewExporter().AddSheet(sheet)
	if err := exporter.ExportToExcel(ctx, a.Config.OUTPUT_FILE_PATH); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Config.OUTPUT_FILE_PATH, err)
	}

	logger.InfoLog(ctx, "Agenda for %s written to %s", now.Format(a.Layout.DateFormat), a.Config.OUTPUT_FILE_PATH)
	return nil
}

func (a *App) Close() error {
	return logger.Close()
}
