package bootstrap

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	exportinadapter "timetable/internal/modules/export/adapter/in"
	exportoutadapter "timetable/internal/modules/export/adapter/out"
	exportservice "timetable/internal/modules/export/service"
	exportusecase "timetable/internal/modules/export/usecase"
	scheduleinadapter "timetable/internal/modules/schedule/adapter/in"
	scheduleoutadapter "timetable/internal/modules/schedule/adapter/out"
	scheduleout "timetable/internal/modules/schedule/port/out"
	scheduleservice "timetable/internal/modules/schedule/service"
	scheduleusecase "timetable/internal/modules/schedule/usecase"
	selectioninadapter "timetable/internal/modules/selection/adapter/in"
	selectionoutadapter "timetable/internal/modules/selection/adapter/out"
	selectionservice "timetable/internal/modules/selection/service"
	selectionusecase "timetable/internal/modules/selection/usecase"
	"timetable/internal/platform/clock"
	"timetable/internal/platform/config"
	"timetable/internal/platform/kv"
	uiapp "timetable/internal/ui/app"
)

type App struct {
	ScheduleCLI  scheduleinadapter.CLIHandler
	SelectionCLI selectioninadapter.CLIHandler
	ExportCLI    exportinadapter.CLIHandler

	logger *zap.Logger
	db     *kv.SQLiteStore
}

// New wires every module and restores the persisted selection. An
// unavailable state database degrades to in-memory state.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	var source scheduleout.DatasetSource = scheduleoutadapter.NewEmbeddedDatasetSource()
	if cfg.DataPath != "" {
		source = scheduleoutadapter.NewFileDatasetSource(cfg.DataPath)
	}
	scheduleSvc, err := scheduleservice.Load(ctx, source, logger)
	if err != nil {
		return nil, err
	}
	scheduleUC := scheduleusecase.NewInteractor(scheduleSvc, scheduleoutadapter.NewBrowserOpener())

	var store kv.Store
	db, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Warn("state database unavailable, selection will not persist",
			zap.String("path", cfg.DBPath), zap.Error(err))
		store = kv.NewMemoryStore()
	} else {
		store = db
	}
	selectionStore := selectionservice.NewSelectionStore(
		selectionoutadapter.NewKVStateStore(store),
		scheduleSvc.Dataset(),
		logger,
	)
	selectionUC := selectionusecase.NewInteractor(selectionStore)
	selectionUC.Load(ctx)

	clipboard := exportoutadapter.NewFallbackClipboard(
		exportoutadapter.NewSystemClipboard(),
		exportoutadapter.NewOSC52Clipboard(os.Stderr),
		logger,
	)
	exportUC := exportusecase.NewInteractor(
		exportservice.NewExportService(scheduleSvc, clipboard, exportoutadapter.NewFileNoteStore(), clock.SystemClock{}, logger),
	)

	return &App{
		ScheduleCLI:  scheduleinadapter.NewCLIHandler(scheduleUC),
		SelectionCLI: selectioninadapter.NewCLIHandler(selectionUC),
		ExportCLI:    exportinadapter.NewCLIHandler(exportUC),
		logger:       logger,
		db:           db,
	}, nil
}

func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close state database: %w", err)
	}
	return nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ScheduleCLI, app.SelectionCLI, app.ExportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
