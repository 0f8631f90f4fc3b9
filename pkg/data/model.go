package data

import "errors"

type Category string

const (
	Monstres      Category = "Monstres"
	Boss          Category = "Boss"
	Archimonstres Category = "Archimonstres"
)

// Categories lists the catalog groups in display order.
var Categories = []Category{Monstres, Boss, Archimonstres}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownMonster  = errors.New("unknown monster")
)

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if equalFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Catalog holds the monster names of each category, in file order.
type Catalog struct {
	Monstres      []string `json:"Monstres"`
	Boss          []string `json:"Boss"`
	Archimonstres []string `json:"Archimonstres"`
}

// Names returns the names of a category, or nil for an unknown one.
func (c *Catalog) Names(cat Category) []string {
	switch cat {
	case Monstres:
		return c.Monstres
	case Boss:
		return c.Boss
	case Archimonstres:
		return c.Archimonstres
	}
	return nil
}

func (c *Catalog) set(cat Category, names []string) {
	switch cat {
	case Monstres:
		c.Monstres = names
	case Boss:
		c.Boss = names
	case Archimonstres:
		c.Archimonstres = names
	}
}

// All returns every name across categories, category by category.
func (c *Catalog) All() []string {
	all := make([]string, 0, c.Total())
	for _, cat := range Categories {
		all = append(all, c.Names(cat)...)
	}
	return all
}

// Total is the sum of the category lengths.
func (c *Catalog) Total() int {
	return len(c.Monstres) + len(c.Boss) + len(c.Archimonstres)
}

// CategoryOf returns the first category containing name.
func (c *Catalog) CategoryOf(name string) (Category, bool) {
	for _, cat := range Categories {
		for _, n := range c.Names(cat) {
			if n == name {
				return cat, true
			}
		}
	}
	return "", false
}

// Capture is one catalog entry with its captured flag.
type Capture struct {
	Category Category
	Name     string
	Captured bool
}

// Summary counts captured monsters against the catalog size.
type Summary struct {
	Done  int
	Total int
}

func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Total) * 100
}
