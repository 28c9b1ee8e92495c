// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/infra/config"
	"github.com/runoshun/focus-pulse/internal/infra/decomposer"
	"github.com/runoshun/focus-pulse/internal/infra/ids"
	"github.com/runoshun/focus-pulse/internal/infra/jsonstore"
	"github.com/runoshun/focus-pulse/internal/infra/logging"
	"github.com/runoshun/focus-pulse/internal/infra/sqlitestore"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// Config holds the resolved storage paths.
type Config struct {
	DataDir string // Directory holding tasks, ledger, profile and logs
	Backend string // Store backend in use
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Ledger        domain.LedgerRepository
	Profiles      domain.ProfileRepository
	Decomposer    domain.Decomposer
	IDs           domain.IDGenerator
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container from the user's configuration and environment.
func New() (*Container, error) {
	return newContainer(config.NewLoader(), config.NewManager(), os.Getenv)
}

func newContainer(loader domain.ConfigLoader, manager domain.ConfigManager, getenv func(string) string) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		// Run on defaults and report the broken file as a warning
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, err.Error())
	}

	dataDir, err := ResolveDataDir(appConfig.Store, getenv)
	if err != nil {
		return nil, err
	}
	cfg := Config{DataDir: dataDir, Backend: appConfig.Store.Backend}
	if cfg.Backend == "" {
		cfg.Backend = domain.BackendJSON
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	c := &Container{
		IDs:           ids.Generator{},
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  loader,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Config:        cfg,
		closers:       []io.Closer{logger},
	}

	switch cfg.Backend {
	case domain.BackendJSON:
		store := jsonstore.New(dataDir)
		if err := store.Initialize(); err != nil {
			return nil, fmt.Errorf("initialize store: %w", err)
		}
		c.Tasks = store
		c.Ledger = store.Ledger()
		c.Profiles = store
	case domain.BackendSQLite:
		store, err := sqlitestore.Open(filepath.Join(dataDir, sqlitestore.FileName))
		if err != nil {
			return nil, err
		}
		c.Tasks = store
		c.Ledger = store.Ledger()
		c.Profiles = store
		c.closers = append(c.closers, store)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Backend, domain.ErrUnknownBackend)
	}

	c.Decomposer = decomposer.New(appConfig.AI, logger)
	logger.Debug("app", fmt.Sprintf("data dir %s (%s store)", dataDir, cfg.Backend))

	return c, nil
}

// ResolveDataDir returns the data directory.
// Precedence: [store] dir, then $PULSE_HOME, then the XDG data home.
func ResolveDataDir(store domain.StoreConfig, getenv func(string) string) (string, error) {
	if store.Dir != "" {
		return store.Dir, nil
	}
	if dir := getenv("PULSE_HOME"); dir != "" {
		return dir, nil
	}
	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome), nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, ledger domain.LedgerRepository, profiles domain.ProfileRepository, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Ledger:    ledger,
		Profiles:  profiles,
		IDs:       ids.Generator{},
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Decomposer, c.IDs, c.Clock, c.Logger)
}

// AddStepUseCase returns a new AddStep use case.
func (c *Container) AddStepUseCase() *usecase.AddStep {
	return usecase.NewAddStep(c.Tasks, c.IDs, c.Logger)
}

// ToggleStepUseCase returns a new ToggleStep use case.
func (c *Container) ToggleStepUseCase() *usecase.ToggleStep {
	return usecase.NewToggleStep(c.Tasks, c.Ledger, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.IDs, c.Clock, c.Logger)
}

// CompleteFocusUseCase returns a new CompleteFocus use case.
func (c *Container) CompleteFocusUseCase() *usecase.CompleteFocus {
	return usecase.NewCompleteFocus(c.Ledger, c.IDs, c.Logger)
}

// RunFocusUseCase returns a new RunFocus use case.
func (c *Container) RunFocusUseCase() *usecase.RunFocus {
	return usecase.NewRunFocus(c.CompleteFocusUseCase(), c.Clock, c.Logger)
}

// PlantSeedUseCase returns a new PlantSeed use case.
func (c *Container) PlantSeedUseCase() *usecase.PlantSeed {
	return usecase.NewPlantSeed(c.Ledger, c.IDs, c.Clock, c.Logger)
}

// WaterPlantUseCase returns a new WaterPlant use case.
func (c *Container) WaterPlantUseCase() *usecase.WaterPlant {
	return usecase.NewWaterPlant(c.Ledger, c.Logger)
}

// ShowGardenUseCase returns a new ShowGarden use case.
func (c *Container) ShowGardenUseCase() *usecase.ShowGarden {
	return usecase.NewShowGarden(c.Ledger)
}

// ShowProfileUseCase returns a new ShowProfile use case.
func (c *Container) ShowProfileUseCase() *usecase.ShowProfile {
	return usecase.NewShowProfile(c.Profiles, c.Ledger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Profiles, c.Logger)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Profiles, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
