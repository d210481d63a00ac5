package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
)

var scheduleWeek string

var scheduleCmd = &cobra.Command{
	Use:   "schedule <goal-id> <days>",
	Short: "Set a goal's scheduled weekdays",
	Long: `Set the weekdays a goal is scheduled on. Days are comma-separated
numbers 0-6, Sunday first.

With --week the assignment is also recorded against that week's plan.

Examples:
  tempo-cli schedule 3f2a 1,3,5
  tempo-cli schedule 3f2a 1,3,5 --week 2024-01-08`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(args[1])
		if err != nil {
			return err
		}

		ctx := context.Background()
		updCmd := commands.NewUpdateScheduledDaysCommand(GetReconciler(), args[0], days)
		goal, err := updCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled %q on %d days\n", goal.Title, len(days))

		if scheduleWeek != "" {
			weekCmd := commands.NewSetWeekScheduleCommand(GetReconciler(), scheduleWeek, args[0], days)
			result, err := weekCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
		}
		return nil
	},
}

func parseDays(s string) ([]int, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", p, err)
		}
		days = append(days, d)
	}
	return days, nil
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleWeek, "week", "", "week start date (YYYY-MM-DD) to record the plan against")
	rootCmd.AddCommand(scheduleCmd)
}
