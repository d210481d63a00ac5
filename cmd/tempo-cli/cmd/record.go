package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
)

var recordDate string

var recordCmd = &cobra.Command{
	Use:   "record <goal-id> <amount>",
	Short: "Record a numeric amount for a count goal",
	Long: `Record a numeric amount against a count goal for a date.

The amount replaces any existing entry for the date; 0 removes it.
Progress is recomputed and synced to linked goals.

Examples:
  tempo-cli record 3f2a 5
  tempo-cli record 3f2a 12.5 --date 2024-01-10
  tempo-cli record 3f2a 0 --date 2024-01-10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}

		ctx := context.Background()
		recCmd := commands.NewRecordProgressCommand(GetReconciler(), args[0], amount, recordDate)
		result, err := recCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <goal-id>",
	Short: "Toggle a date done/not-done for a boolean goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		togCmd := commands.NewToggleCompletionCommand(GetReconciler(), args[0], recordDate)
		result, err := togCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var quarterlyCmd = &cobra.Command{
	Use:   "quarterly <goal-id> <quarter> <value>",
	Short: "Set a quarter's value on a good-enough goal",
	Long: `Set the value for one quarter on a good-enough goal.

Examples:
  tempo-cli quarterly 3f2a "Q2 2024" 81.5`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[2], err)
		}

		ctx := context.Background()
		qCmd := commands.NewRecordQuarterlyCommand(GetReconciler(), args[0], args[1], value)
		result, err := qCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	today := time.Now().Format("2006-01-02")
	recordCmd.Flags().StringVar(&recordDate, "date", today, "date to record for (YYYY-MM-DD)")
	toggleCmd.Flags().StringVar(&recordDate, "date", today, "date to toggle (YYYY-MM-DD)")
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(quarterlyCmd)
}
