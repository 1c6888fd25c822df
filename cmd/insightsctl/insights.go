package main

import (
	"github.com/spf13/cobra"

	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print the prediction insights for a user",
	RunE:  runInsights,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the aggregated household snapshot for a user",
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	injector, cleanup, err := openInjector()
	if err != nil {
		return err
	}
	defer cleanup()

	output := injector.Insights.Execute(cmd.Context(), userID)
	return printJSON(cmd.OutOrStdout(), dto.ToInsightsResponse(output.Insights, output.Generated, output.GeneratedAt))
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	injector, cleanup, err := openInjector()
	if err != nil {
		return err
	}
	defer cleanup()

	return printJSON(cmd.OutOrStdout(), injector.Snapshots.Execute(cmd.Context(), userID))
}
