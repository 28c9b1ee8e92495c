package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrStepNotFound      = errors.New("step not found")
	ErrPlantNotFound     = errors.New("plant not found")
	ErrAmbiguousID       = errors.New("ambiguous ID prefix")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyStepText     = errors.New("step text cannot be empty")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidDuration   = errors.New("duration must be a positive number of minutes")
	ErrInsufficientSeeds = errors.New("not enough seeds")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrPlantMature       = errors.New("plant is already fully grown")
	ErrUnknownPlantType  = errors.New("unknown plant type")
	ErrTimerRunning      = errors.New("timer is running")
	ErrTimerNotRunning   = errors.New("timer is not running")
	ErrTimerNotPaused    = errors.New("timer is not paused")
	ErrNotLoggedIn       = errors.New("not logged in (run 'pulse login <name>' first)")
	ErrCorruptLedger     = errors.New("ledger violates balance invariants")
	ErrConfigExists      = errors.New("config file already exists")
	ErrUnknownBackend    = errors.New("unknown store backend")
	ErrEmptyFile         = errors.New("file is empty")
	ErrNoTasksInFile     = errors.New("no tasks found in file")
)
