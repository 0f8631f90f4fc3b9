package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the checklist",
	Long:  "Display every monster with its capture state in a formatted table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		query, _ := cmd.Flags().GetString("query")

		sess, err := openSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer sess.Close()

		cobra.CheckErr(runList(cmd.OutOrStdout(), sess.tracker, category, query))
	},
}

func init() {
	listCmd.Flags().StringP("category", "c", "", "only list this category")
	listCmd.Flags().StringP("query", "s", "", "only list names containing this text")
}

func runList(out io.Writer, tracker *services.Tracker, category, query string) error {
	var only data.Category
	if category != "" {
		cat, err := data.ParseCategory(category)
		if err != nil {
			return fmt.Errorf("%w: %s", err, category)
		}
		only = cat
	}

	res := tracker.Search(query)

	rows := []table.Row{}
	for _, section := range res.Sections {
		if only != "" && section.Category != only {
			continue
		}
		for _, row := range section.Rows {
			if !row.Visible {
				continue
			}
			mark := "✖"
			if tracker.IsCaptured(row.Name) {
				mark = "✔"
			}
			rows = append(rows, table.Row{
				string(section.Category),
				truncateString(row.Name, 38),
				mark,
			})
		}
	}

	summary := tracker.Summary()
	if len(rows) == 0 {
		fmt.Fprintln(out, "❌ No monster matches.")
		if suggestions := tracker.Suggest(query); len(suggestions) > 0 {
			fmt.Fprintf(out, "💡 Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		fmt.Fprintf(out, "%d/%d capturés\n", summary.Done, summary.Total)
		return nil
	}

	columns := []table.Column{
		{Title: "Category", Width: 14},
		{Title: "Monster", Width: 40},
		{Title: "Captured", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	// Height counts the header and its border.
	t.SetHeight(len(rows) + 2)

	fmt.Fprintf(out, "\n📘 Otomaï checklist (%d/%d capturés)\n\n", summary.Done, summary.Total)
	fmt.Fprintln(out, t.View())
	return nil
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
