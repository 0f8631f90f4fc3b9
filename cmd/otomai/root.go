package cmd

import (
	"fmt"
	"os"

	"github.com/Detrauxa/Otoma--Tracker/pkg/app"
	"github.com/Detrauxa/Otoma--Tracker/pkg/config"
	"github.com/Detrauxa/Otoma--Tracker/pkg/logging"
	"github.com/Detrauxa/Otoma--Tracker/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags holds the persistent flag values; empty fields fall back to the
// environment and then the defaults.
var flags config.Config

var rootCmd = &cobra.Command{
	Use:   "otomai",
	Short: "Otomaï capture tracker",
	Long:  "Track which Otomaï monsters, bosses and archmonsters you have captured",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		sess, err := openSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer sess.Close()

		if err := app.NewApp(sess.tracker).Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", "", "directory holding progress.json and settings.json (default ~/"+config.DirName+")")
	rootCmd.PersistentFlags().StringVar(&flags.CatalogPath, "catalog", "", "path to monsters.json (default <data-dir>/"+config.CatalogFile+")")
	rootCmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "log file, or - for stderr (default <data-dir>/"+config.LogFile+")")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is what every command works with.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	tracker *services.Tracker
}

func (s *session) Close() {
	_ = s.logger.Sync()
}

// openSession resolves the configuration, opens the log and loads the
// tracker.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger = logger.With(zap.String("command", cmd.Name()))

	tracker, err := services.NewTracker(cfg.Paths(), logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	if tracker.Seeded {
		fmt.Fprintf(cmd.ErrOrStderr(), "📝 Created a template catalog: %s\n   Edit it to add your full monster lists.\n", cfg.CatalogPath)
	}

	return &session{cfg: cfg, logger: logger, tracker: tracker}, nil
}
