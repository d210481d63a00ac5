package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Run a full consistency sweep over all goals",
	Long: `Re-derive every goal's progress from its history and re-sync
linked goals. Safe to run repeatedly; a second run changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rcCmd := commands.NewRecalculateCommand(GetReconciler())
		result, err := rcCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var weekTransitionCmd = &cobra.Command{
	Use:   "week-transition",
	Short: "Reset scheduled days on weekly goals for a new week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		wtCmd := commands.NewWeekTransitionCommand(GetReconciler())
		result, err := wtCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recalcCmd)
	rootCmd.AddCommand(weekTransitionCmd)
}
