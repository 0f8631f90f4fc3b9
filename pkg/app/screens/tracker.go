package screens

import (
	"fmt"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/app/components"
	"github.com/Detrauxa/Otoma--Tracker/pkg/app/styles"
	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/filter"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines taken by everything around the checklist: title, search box,
// progress, status, the card border and help.
const chromeHeight = 13

// TrackerScreen is the checklist: a search box over the three categories.
// Every change goes through the tracker, which persists it before the
// screen re-renders.
type TrackerScreen struct {
	tracker *services.Tracker
	input   textinput.Model
	list    *components.Checklist
	theme   styles.Theme
	keys    keyMap
	help    help.Model

	result      filter.Result
	suggestions []string
	status      string

	width  int
	height int
}

func NewTrackerScreen(tracker *services.Tracker) *TrackerScreen {
	ti := textinput.New()
	ti.Placeholder = "Rechercher…"
	ti.Prompt = "🔎 "
	ti.CharLimit = 100
	ti.Width = 40

	s := &TrackerScreen{
		tracker: tracker,
		input:   ti,
		list:    components.NewChecklist(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	s.applyTheme(styles.NewTheme(tracker.Theme()))
	s.refresh()
	return s
}

func (s *TrackerScreen) Init() tea.Cmd {
	return nil
}

func (s *TrackerScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 6
		s.list.Height = max(msg.Height-chromeHeight, 3)
		s.help.Width = msg.Width
		s.input.Width = max(min(60, msg.Width-10), 10)
		return s, nil

	case tea.KeyMsg:
		if s.input.Focused() {
			return s.updateSearch(msg)
		}
		return s.updateList(msg)
	}

	if s.input.Focused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TrackerScreen) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return s, tea.Quit

	case key.Matches(msg, s.keys.Clear):
		if msg.String() == "esc" && s.input.Value() == "" {
			s.input.Blur()
			return s, nil
		}
		s.clearSearch()
		return s, nil

	case key.Matches(msg, s.keys.Leave):
		s.input.Blur()
		return s, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd
}

func (s *TrackerScreen) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s.status = ""

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.keys.Up):
		s.list.Prev()
	case key.Matches(msg, s.keys.Down):
		s.list.Next()
	case key.Matches(msg, s.keys.Toggle):
		return s, s.toggleSelected()
	case key.Matches(msg, s.keys.CheckAll):
		return s, s.setAll(true)
	case key.Matches(msg, s.keys.UncheckAll):
		return s, s.setAll(false)
	case key.Matches(msg, s.keys.Theme):
		return s, s.toggleTheme()
	case key.Matches(msg, s.keys.Search):
		return s, s.input.Focus()
	case key.Matches(msg, s.keys.Clear):
		s.clearSearch()
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return s, nil
}

func (s *TrackerScreen) toggleSelected() tea.Cmd {
	sel := s.list.Selected()
	if sel == nil {
		return nil
	}

	switch sel.Kind {
	case components.HeaderLine:
		cat := sel.Category
		open, err := s.tracker.ToggleCategory(cat)
		if err != nil {
			return fail(err)
		}
		if s.result.Active() {
			s.status = fmt.Sprintf("%s will be %s once the search is cleared", cat, openWord(open))
		}
	case components.MonsterLine:
		if _, err := s.tracker.ToggleCaptured(sel.Name); err != nil {
			return fail(err)
		}
	}

	s.refresh()
	return nil
}

func (s *TrackerScreen) setAll(captured bool) tea.Cmd {
	cat, ok := s.list.SelectedCategory()
	if !ok {
		return nil
	}
	if err := s.tracker.SetAllInGroup(cat, captured); err != nil {
		return fail(err)
	}

	sum := s.tracker.CategorySummary(cat)
	s.status = fmt.Sprintf("%s: %d/%d", cat, sum.Done, sum.Total)
	s.refresh()
	return nil
}

func (s *TrackerScreen) toggleTheme() tea.Cmd {
	theme, err := s.tracker.ToggleTheme()
	if err != nil {
		return fail(err)
	}
	s.applyTheme(styles.NewTheme(theme))
	return nil
}

func (s *TrackerScreen) clearSearch() {
	s.input.SetValue("")
	s.refresh()
}

// refresh recomputes visibility from the current query and persisted state.
func (s *TrackerScreen) refresh() {
	s.result = s.tracker.Search(s.input.Value())
	s.list.SetLines(components.BuildLines(s.result, s.tracker))

	s.suggestions = nil
	if s.result.Active() && s.result.Matches() == 0 {
		s.suggestions = s.tracker.Suggest(s.input.Value())
	}
}

func (s *TrackerScreen) applyTheme(theme styles.Theme) {
	s.theme = theme
	s.input.PromptStyle = theme.Title
	s.input.TextStyle = theme.Text
	s.input.PlaceholderStyle = theme.Muted
	s.help.Styles.ShortKey = theme.Subtitle
	s.help.Styles.FullKey = theme.Subtitle
	s.help.Styles.ShortDesc = theme.Muted
	s.help.Styles.FullDesc = theme.Muted
}

func (s *TrackerScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	title := s.theme.Title.Render("📘 Suivi des Captures Otomaï")
	icon := s.theme.Muted.Render(s.theme.Icon())
	gap := max(s.width-lipgloss.Width(title)-lipgloss.Width(icon)-2, 1)
	header := title + strings.Repeat(" ", gap) + icon

	inputStyle := s.theme.Input
	if s.input.Focused() {
		inputStyle = s.theme.FocusedInput
	}
	search := inputStyle.Render(s.input.View())

	progress := components.ProgressLine(s.tracker.Summary(), s.width-2, s.theme)

	var notice string
	switch {
	case len(s.suggestions) > 0:
		notice = s.theme.Muted.Render("No match. Did you mean: " + strings.Join(s.suggestions, ", ") + "?")
	case s.result.Active() && s.result.Matches() == 0:
		notice = s.theme.Muted.Render("No match.")
	case s.status != "":
		notice = s.theme.Subtitle.Render(s.status)
	}

	// The card is highlighted while the list has the keyboard.
	card := s.theme.ActiveCard
	if s.input.Focused() {
		card = s.theme.Card
	}
	list := card.Render(strings.TrimRight(s.list.View(s.theme), "\n"))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		header,
		search,
		progress,
		notice,
		list,
		s.theme.Help.Render(s.help.View(s.keys)),
	)
}

// Query is the current search text.
func (s *TrackerScreen) Query() string {
	return s.input.Value()
}

// Theme is the active theme.
func (s *TrackerScreen) Theme() data.Theme {
	return s.theme.Name
}

func openWord(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
