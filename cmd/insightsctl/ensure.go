package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

var flagAll bool

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create the current month's report if it is due",
	Long:  "Create the current month's report on the first day of the month. With --all, sweep every active user.",
	RunE:  runEnsure,
}

func init() {
	ensureCmd.Flags().BoolVar(&flagAll, "all", false, "Sweep every active user")
	rootCmd.AddCommand(ensureCmd)
}

func runEnsure(cmd *cobra.Command, _ []string) error {
	injector, cleanup, err := openInjector()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	if flagAll {
		return printJSON(cmd.OutOrStdout(), injector.ReportSweep.RunSweep(ctx))
	}

	userID, err := requireUser()
	if err != nil {
		return err
	}

	output, err := injector.EnsureReport.Execute(ctx, userID)
	if err != nil {
		return fmt.Errorf("ensure report: %w", err)
	}

	response := dto.EnsureReportResponse{
		Status:    string(output.Status),
		PeriodKey: output.PeriodKey.Format("2006-01"),
	}
	if output.Report != nil {
		r := dto.ToReportResponse(output.Report)
		response.Report = &r
	}
	return printJSON(cmd.OutOrStdout(), response)
}
