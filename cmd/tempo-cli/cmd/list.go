package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
	"tempo/internal/domain"
)

var listHorizon string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with their progress",
	Long: `List goals with their current progress.

Examples:
  tempo-cli list
  tempo-cli list --horizon annual
  tempo-cli list --horizon weekly`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListGoalsCommand(GetReconciler(), domain.TimeHorizon(listHorizon))
		goals, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, g := range goals {
			printGoalLine(g)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Show one goal in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowGoalCommand(GetReconciler(), args[0])
		g, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printGoalLine(g)
		fmt.Printf("  status: %s  category: %s\n", g.Status, g.Category)
		if g.ParentGoalID != "" {
			fmt.Printf("  parent: %s\n", g.ParentGoalID)
		}
		if g.IsGoodEnough() {
			fmt.Printf("  threshold: %s %g %s per %s\n", g.Relationship, g.Threshold, g.Unit, g.Timeframe)
		}
		for _, e := range g.Tracking.CountHistory {
			fmt.Printf("  %s  %g\n", e.Date, e.Value)
		}
		for _, d := range g.Tracking.CompletedDates {
			fmt.Printf("  %s  done\n", d)
		}
		return nil
	},
}

func printGoalLine(g *domain.Goal) {
	line := fmt.Sprintf("%s  %s [%s/%s]", g.ID, g.Title, g.TimeHorizon, g.TrackingType)
	if g.TrackingType == domain.TrackingCount && g.Tracking.Target != nil {
		line += fmt.Sprintf("  %g/%g %s", g.Tracking.Progress, g.Tracking.Target.Value, g.Tracking.Target.Unit)
	} else if g.TrackingType == domain.TrackingBoolean {
		line += fmt.Sprintf("  %d days done", len(g.Tracking.CompletedDates))
	}
	fmt.Println(line)
}

func init() {
	listCmd.Flags().StringVar(&listHorizon, "horizon", "", "filter by time horizon (weekly, quarterly, annual, lifetime, ongoing)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
