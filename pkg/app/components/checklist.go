package components

import (
	"fmt"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/app/styles"
	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/filter"
	"github.com/charmbracelet/lipgloss"
)

type LineKind int

const (
	HeaderLine LineKind = iota
	MonsterLine
)

// Line is one selectable entry: a category header or a monster row.
type Line struct {
	Kind     LineKind
	Category data.Category
	Name     string
	Captured bool
	Open     bool
	Summary  data.Summary
}

func (l Line) sameAs(o Line) bool {
	return l.Kind == o.Kind && l.Category == o.Category && l.Name == o.Name
}

// Source answers the per-monster and per-category questions BuildLines needs.
type Source interface {
	IsCaptured(name string) bool
	CategorySummary(cat data.Category) data.Summary
}

// BuildLines flattens a filter result into the lines shown on screen: every
// header, followed by the visible rows of open categories.
func BuildLines(res filter.Result, src Source) []Line {
	var lines []Line
	for _, section := range res.Sections {
		lines = append(lines, Line{
			Kind:     HeaderLine,
			Category: section.Category,
			Open:     section.Open,
			Summary:  src.CategorySummary(section.Category),
		})
		if !section.Open {
			continue
		}
		for _, row := range section.Rows {
			if !row.Visible {
				continue
			}
			lines = append(lines, Line{
				Kind:     MonsterLine,
				Category: section.Category,
				Name:     row.Name,
				Captured: src.IsCaptured(row.Name),
			})
		}
	}
	return lines
}

type Checklist struct {
	Lines         []Line
	SelectedIndex int
	Width         int
	Height        int
	offset        int
}

func NewChecklist() *Checklist {
	return &Checklist{
		Lines:         []Line{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

// SetLines replaces the lines and keeps the cursor on the same entry when it
// is still listed.
func (c *Checklist) SetLines(lines []Line) {
	var prev *Line
	if sel := c.Selected(); sel != nil {
		p := *sel
		prev = &p
	}

	c.Lines = lines
	if prev != nil {
		for i, l := range lines {
			if l.sameAs(*prev) {
				c.SelectedIndex = i
				return
			}
		}
	}

	if c.SelectedIndex >= len(lines) && len(lines) > 0 {
		c.SelectedIndex = len(lines) - 1
	}
	if len(lines) == 0 {
		c.SelectedIndex = 0
	}
}

func (c *Checklist) Next() {
	if len(c.Lines) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Lines) {
		c.SelectedIndex = 0
	}
}

func (c *Checklist) Prev() {
	if len(c.Lines) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Lines) - 1
	}
}

func (c *Checklist) Selected() *Line {
	if len(c.Lines) == 0 || c.SelectedIndex >= len(c.Lines) {
		return nil
	}
	return &c.Lines[c.SelectedIndex]
}

// SelectedCategory is the category of the cursor line, header or row.
func (c *Checklist) SelectedCategory() (data.Category, bool) {
	sel := c.Selected()
	if sel == nil {
		return "", false
	}
	return sel.Category, true
}

func (c *Checklist) View(theme styles.Theme) string {
	if len(c.Lines) == 0 {
		empty := theme.Muted.Render("Catalog is empty: edit monsters.json to add monsters")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, empty)
	}

	start, end := c.window()

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(c.renderLine(c.Lines[i], i == c.SelectedIndex, theme))
		b.WriteString("\n")
	}
	return b.String()
}

// window returns the range of lines that fits in Height, scrolled so the
// cursor stays visible.
func (c *Checklist) window() (int, int) {
	height := c.Height
	if height <= 0 || height >= len(c.Lines) {
		c.offset = 0
		return 0, len(c.Lines)
	}

	if c.SelectedIndex < c.offset {
		c.offset = c.SelectedIndex
	}
	if c.SelectedIndex >= c.offset+height {
		c.offset = c.SelectedIndex - height + 1
	}
	if c.offset+height > len(c.Lines) {
		c.offset = len(c.Lines) - height
	}
	return c.offset, c.offset + height
}

func (c *Checklist) renderLine(l Line, selected bool, theme styles.Theme) string {
	var text string
	switch l.Kind {
	case HeaderLine:
		arrow := "►"
		if l.Open {
			arrow = "▼"
		}
		counts := theme.Muted.Render(fmt.Sprintf("%d/%d", l.Summary.Done, l.Summary.Total))
		text = fmt.Sprintf("%s %s  %s", arrow, theme.Header.Render(string(l.Category)), counts)
	case MonsterLine:
		if l.Captured {
			text = "    " + theme.Captured.Render("[✔] "+l.Name)
		} else {
			text = "    " + theme.Text.Render("[ ] "+l.Name)
		}
	}

	if selected {
		return theme.Cursor.Render("›") + text
	}
	return " " + text
}
