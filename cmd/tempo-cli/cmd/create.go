package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/application/commands"
	"tempo/internal/domain"
)

var (
	createHorizon  string
	createTracking string
	createCategory string
	createTarget   float64
	createUnit     string
	createParent   string
	createPerWeek  int
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new goal",
	Long: `Create a new goal.

Examples:
  tempo-cli create "Run 3x per week" --horizon weekly --tracking boolean --days-per-week 3
  tempo-cli create "Read 24 books" --horizon annual --tracking count --target 24 --unit books
  tempo-cli create "Read 24 books (2024)" --horizon annual --tracking count --target 24 --parent 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := &domain.Goal{
			Title:        args[0],
			TimeHorizon:  domain.TimeHorizon(createHorizon),
			TrackingType: domain.TrackingType(createTracking),
			Category:     createCategory,
			ParentGoalID: createParent,
			DaysPerWeek:  createPerWeek,
		}
		if createTarget > 0 {
			goal.Tracking.Target = &domain.Target{Value: createTarget, Unit: createUnit}
		}

		ctx := context.Background()
		createCmd := commands.NewCreateGoalCommand(GetReconciler(), goal)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		delCmd := commands.NewDeleteGoalCommand(GetReconciler(), args[0])
		result, err := delCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createHorizon, "horizon", "ongoing", "time horizon (weekly, quarterly, annual, lifetime, ongoing)")
	createCmd.Flags().StringVar(&createTracking, "tracking", "boolean", "tracking type (boolean or count)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "free-form category label")
	createCmd.Flags().Float64Var(&createTarget, "target", 0, "numeric target for count goals")
	createCmd.Flags().StringVar(&createUnit, "unit", "", "unit for the target (books, km, ...)")
	createCmd.Flags().StringVar(&createParent, "parent", "", "id of the parent goal to link to")
	createCmd.Flags().IntVar(&createPerWeek, "days-per-week", 0, "intended days per week for boolean goals")
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
}
