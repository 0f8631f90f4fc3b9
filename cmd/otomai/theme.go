package cmd

import (
	"fmt"
	"io"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the TUI theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(data.ThemeDark), string(data.ThemeLight)},
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer sess.Close()

		value := ""
		if len(args) == 1 {
			value = args[0]
		}
		cobra.CheckErr(runTheme(cmd.OutOrStdout(), sess.tracker, value))
	},
}

func runTheme(out io.Writer, tracker *services.Tracker, value string) error {
	if value != "" {
		theme, err := data.ParseTheme(value)
		if err != nil {
			return err
		}
		if err := tracker.SetTheme(theme); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, tracker.Theme())
	return nil
}
