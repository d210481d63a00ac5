package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tempo/internal/adapters/sqlite"
	"tempo/internal/application"
	"tempo/internal/config"
)

var (
	dbPath string
	store  *sqlite.Store
	rec    *application.Reconciler
)

var rootCmd = &cobra.Command{
	Use:   "tempo-cli",
	Short: "CLI for tracking goal progress",
	Long: `tempo-cli is a command-line interface for a personal goal tracker.

Goals are tracked per day either as done/not-done or as numeric amounts
against a target, across weekly to lifetime horizons. Linked goals share
one progress ledger that is kept in sync on every write.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = sqlite.NewStore()
		if err := store.Open(dbPath); err != nil {
			return err
		}
		rec = application.NewReconciler(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DatabasePath(), "path to the goal database")
}

// GetReconciler returns the initialized reconciler
func GetReconciler() *application.Reconciler {
	return rec
}
