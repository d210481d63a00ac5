package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
	"tempo/internal/domain"
)

var projectionPeriod string

var projectionCmd = &cobra.Command{
	Use:   "projection <goal-id>",
	Short: "Show pacing and trend projections for a goal",
	Long: `Show where a goal stands against the calendar.

For any goal this prints the year-to-date pace. Lifetime goals also get
a completion-year estimate from recent yearly totals, and good-enough
goals get their threshold status for the current (or given) quarter.

Examples:
  tempo-cli projection 3f2a
  tempo-cli projection 3f2a --period "Q2 2024"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		projCmd := commands.NewProjectionCommand(GetReconciler(), args[0], time.Now())
		projCmd.Period = projectionPeriod
		result, err := projCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printProjection(result)
		return nil
	},
}

func printProjection(r *commands.ProjectionResult) {
	ytd := r.YearToDate
	fmt.Printf("%s  %s\n", r.Goal.ID, r.Goal.Title)
	fmt.Printf("  year to date: %.1f%% of %g %s (projected %.1f%%, %g by year end)\n",
		ytd.PercentComplete, ytd.Target, ytd.Unit, ytd.ProjectedPercent, ytd.ProjectedValue)

	if r.Lifetime != nil {
		switch r.Lifetime.Outcome {
		case domain.LifetimeComplete:
			fmt.Println("  lifetime: complete")
		case domain.LifetimeInsufficientData:
			fmt.Println("  lifetime: not enough history to project")
		default:
			fmt.Printf("  lifetime: ~%d years to completion (around %d) at %.1f/year\n",
				r.Lifetime.YearsToCompletion, r.Lifetime.ProjectedCompletionYear, r.Lifetime.AvgPerYear)
		}
	}

	if r.GoodEnough != nil {
		fmt.Printf("  threshold: %s\n", r.GoodEnough)
	}
}

func init() {
	projectionCmd.Flags().StringVar(&projectionPeriod, "period", "", `quarter to evaluate for good-enough goals, e.g. "Q2 2024"`)
	rootCmd.AddCommand(projectionCmd)
}
