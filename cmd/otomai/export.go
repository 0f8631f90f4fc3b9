package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultExportFile = "captures.duckdb"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the checklist to a DuckDB database",
	Long:  "Write one row per monster (category, name, captured, exported_at) to the captures table of a DuckDB file, replacing the previous export",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dbPath, _ := cmd.Flags().GetString("db")

		sess, err := openSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer sess.Close()

		if dbPath == "" {
			dbPath = filepath.Join(sess.cfg.DataDir, defaultExportFile)
		}

		cobra.CheckErr(runExport(cmd.OutOrStdout(), sess.tracker, dbPath, sess.logger))
	},
}

func init() {
	exportCmd.Flags().String("db", "", "DuckDB file to write (default <data-dir>/"+defaultExportFile+")")
}

func runExport(out io.Writer, tracker *services.Tracker, dbPath string, logger *zap.Logger) error {
	repo, err := data.NewDuckDBRepository(dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer repo.Close()

	summary, err := services.NewExporter(tracker, repo, logger).Export()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Exported %d monsters (%d captured) to %s\n", summary.Total, summary.Done, dbPath)

	counts, err := repo.CategoryCounts()
	if err != nil {
		return fmt.Errorf("read back %s: %w", dbPath, err)
	}
	for _, cat := range data.Categories {
		c := counts[cat]
		fmt.Fprintf(out, "   %-14s %d/%d\n", cat, c.Done, c.Total)
	}
	return nil
}
