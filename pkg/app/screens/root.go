package screens

import (
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMsg stops the program. Sent when a write fails: nothing in the UI can
// recover from a disk that refuses writes.
type ErrMsg struct {
	Err error
}

func fail(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}

type RootScreen struct {
	tracker *TrackerScreen
	err     error
}

func NewRootScreen(tracker *services.Tracker) *RootScreen {
	return &RootScreen{tracker: NewTrackerScreen(tracker)}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.tracker.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(ErrMsg); ok {
		r.err = msg.Err
		return r, tea.Quit
	}

	newModel, cmd := r.tracker.Update(msg)
	r.tracker = newModel.(*TrackerScreen)
	return r, cmd
}

func (r *RootScreen) View() string {
	return r.tracker.View()
}

// Err is the error that stopped the program, if any.
func (r *RootScreen) Err() error {
	return r.err
}
