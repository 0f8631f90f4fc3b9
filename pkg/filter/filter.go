// Package filter decides which checklist rows and categories are shown for a
// search query. It only reads the persisted open/closed preferences; the
// state forced by a query lives in the returned Section and is never saved.
package filter

import (
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
)

// OpenState reports the persisted open flag of a category.
type OpenState interface {
	IsOpen(cat data.Category) bool
}

type Row struct {
	Name    string
	Visible bool
}

type Section struct {
	Category data.Category
	Rows     []Row
	// Open is what the view should show: the persisted flag without a query,
	// otherwise whether the category has matches.
	Open bool
	// Forced is set while a query overrides the persisted flag.
	Forced  bool
	Matches int
}

type Result struct {
	Query    string
	Sections []Section
}

// Active reports whether a non-blank query is applied.
func (r Result) Active() bool {
	return r.Query != ""
}

// Matches returns the number of visible rows across every section.
func (r Result) Matches() int {
	n := 0
	for _, s := range r.Sections {
		n += s.Matches
	}
	return n
}

// Section returns the section of a category.
func (r Result) Section(cat data.Category) (Section, bool) {
	for _, s := range r.Sections {
		if s.Category == cat {
			return s, true
		}
	}
	return Section{}, false
}

// Normalize trims and lower-cases a query. Blank queries normalize to "".
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Match reports whether name contains the query, ignoring case. A blank
// query matches everything.
func Match(name, query string) bool {
	q := Normalize(query)
	return q == "" || strings.Contains(strings.ToLower(name), q)
}

// Apply computes row visibility and category expansion for query.
func Apply(catalog *data.Catalog, query string, state OpenState) Result {
	q := Normalize(query)
	res := Result{Query: q, Sections: make([]Section, 0, len(data.Categories))}

	for _, cat := range data.Categories {
		names := catalog.Names(cat)
		section := Section{Category: cat, Rows: make([]Row, len(names))}

		for i, name := range names {
			visible := q == "" || strings.Contains(strings.ToLower(name), q)
			section.Rows[i] = Row{Name: name, Visible: visible}
			if visible {
				section.Matches++
			}
		}

		if q == "" {
			section.Open = state.IsOpen(cat)
		} else {
			section.Open = section.Matches > 0
			section.Forced = true
		}

		res.Sections = append(res.Sections, section)
	}

	return res
}
