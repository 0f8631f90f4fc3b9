package app

import (
	"github.com/Detrauxa/Otoma--Tracker/pkg/app/screens"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	tracker *services.Tracker
}

func NewApp(tracker *services.Tracker) *App {
	return &App{tracker: tracker}
}

// Run blocks until the user quits. A failed write ends the program and is
// returned here.
func (a *App) Run() error {
	model := screens.NewRootScreen(a.tracker)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
