package commands

import (
	"github.com/spf13/cobra"

	"github.com/dkaragoz/clockwise/internal/config"
	"github.com/dkaragoz/clockwise/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "clockwise",
	Short: "A clock-out countdown and work log",
	Long: `clockwise computes your clock-out time from when you clocked in,
counts down the rest of your shift with reminders, and keeps a local
history of your logged days.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		// Bare invocation opens the countdown with login = now
		runTrack("", false)
	}),
}

// initDB loads the config, then initializes the database and panics on error
func initDB() {
	cfg = config.Load()
	if err := db.Initialize(cfg.DatabasePath); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}
