package cmd

import (
	"fmt"
	"io"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture [monster-name...]",
	Short: "Mark monsters as captured",
	Long:  "Mark one or more monsters as captured, or a whole category with --all. Use --off to uncheck.",
	Run: func(cmd *cobra.Command, args []string) {
		off, _ := cmd.Flags().GetBool("off")
		all, _ := cmd.Flags().GetString("all")

		if all == "" && len(args) == 0 {
			cobra.CheckErr(fmt.Errorf("give at least one monster name, or --all <category>"))
		}

		sess, err := openSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer sess.Close()

		cobra.CheckErr(runCapture(cmd.OutOrStdout(), sess.tracker, args, all, !off))
	},
}

func init() {
	captureCmd.Flags().Bool("off", false, "uncheck instead of check")
	captureCmd.Flags().String("all", "", "apply to every monster of this category")
}

func runCapture(out io.Writer, tracker *services.Tracker, names []string, all string, captured bool) error {
	verb := "Captured"
	if !captured {
		verb = "Unchecked"
	}

	// Validate everything first so a typo does not leave a half-applied batch.
	var cat data.Category
	if all != "" {
		parsed, err := data.ParseCategory(all)
		if err != nil {
			return fmt.Errorf("%w: %s", err, all)
		}
		cat = parsed
	}

	resolved := make([]string, 0, len(names))
	for _, input := range names {
		name, err := tracker.ResolveName(input)
		if err != nil {
			return err
		}
		resolved = append(resolved, name)
	}

	if cat != "" {
		if err := tracker.SetAllInGroup(cat, captured); err != nil {
			return err
		}
		sum := tracker.CategorySummary(cat)
		fmt.Fprintf(out, "✅ %s every %s (%d/%d)\n", verb, cat, sum.Done, sum.Total)
	}

	for _, name := range resolved {
		if err := tracker.SetCaptured(name, captured); err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s %s\n", verb, name)
	}

	sum := tracker.Summary()
	fmt.Fprintf(out, "%d/%d capturés\n", sum.Done, sum.Total)
	return nil
}
