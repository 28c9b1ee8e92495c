package tui

import (
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgGardenLoaded is sent when the garden and balances are loaded.
type MsgGardenLoaded struct {
	Garden *usecase.ShowGardenOutput
}

func (MsgGardenLoaded) sealed() {}

// MsgProfileLoaded is sent when the profile summary is loaded.
type MsgProfileLoaded struct {
	Profile *usecase.ShowProfileOutput
}

func (MsgProfileLoaded) sealed() {}

// MsgActionDone is sent when a mutating action succeeded.
// Every view is reloaded afterwards.
type MsgActionDone struct {
	Status string
}

func (MsgActionDone) sealed() {}

// MsgSessionCompleted is sent when a finished countdown was recorded.
type MsgSessionCompleted struct {
	Result *usecase.CompleteFocusOutput
}

func (MsgSessionCompleted) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// tickMsg advances the focus countdown by one second.
// gen identifies the run it was scheduled for; stale ticks are dropped.
type tickMsg struct {
	gen int
}

func (tickMsg) sealed() {}
