package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/Rorical/RoriPersons/internal/config"
	"github.com/Rorical/RoriPersons/internal/core"
	"github.com/Rorical/RoriPersons/internal/dispatcher"
	"github.com/Rorical/RoriPersons/internal/eventbus"
	"github.com/Rorical/RoriPersons/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.PersonService
	model      *AppModel
	logFile    *os.File
	logger     *slog.Logger
}

type AppModel struct {
	appModel   models.AppModel
	input      textinput.Model
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config) (*Application, error) {
	logger, logFile, err := newLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	initial, err := cfg.InitialState()
	if err != nil {
		logger.Error("Failed to build initial state", "error", err)
		return nil, err
	}

	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("Event bus error", "operation", e.Operation, "error", e.Err)
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewPersonService(initial, eb, clockwork.NewRealClock(), logger)

	model := &AppModel{
		appModel:   createInitialAppModel(),
		input:      newNameInput(),
		dispatcher: disp,
	}

	logger.Info("Application created", "persons", initial.Len(), "visibility", initial.Visibility().String())

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
		logFile:    logFile,
		logger:     logger,
	}, nil
}

func (app *Application) Start() error {
	// Start background services
	app.service.Start()

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.logger.Info("Application stopped")
	if app.logFile != nil {
		app.logFile.Close()
	}
}

// newLogger writes to path when set. The TUI owns stdout, so logs are dropped otherwise.
func newLogger(path string) (*slog.Logger, *os.File, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := tea.LogToFile(path, "roripersons")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func newNameInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "name"
	return input
}

func createInitialAppModel() models.AppModel {
	// Persons arrive from the core, which sends the initial snapshot on start
	return models.AppModel{
		Status: "Starting",
		Mode:   models.Browse,
	}
}
