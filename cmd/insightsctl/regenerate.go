package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homeledger/backend/internal/application/usecase/report"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

var (
	flagPeriod string
	flagNotify bool
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild and save a monthly report",
	RunE:  runRegenerate,
}

func init() {
	regenerateCmd.Flags().StringVarP(&flagPeriod, "period", "p", "", "Report month as YYYY-MM (default current month)")
	regenerateCmd.Flags().BoolVar(&flagNotify, "notify", false, "Send the report notification")
	rootCmd.AddCommand(regenerateCmd)
}

func runRegenerate(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}
	period, err := parsePeriod(flagPeriod, time.Now())
	if err != nil {
		return err
	}

	injector, cleanup, err := openInjector()
	if err != nil {
		return err
	}
	defer cleanup()

	output := injector.GenerateAndSave.Execute(cmd.Context(), report.GenerateAndSaveInput{
		UserID:           userID,
		PeriodKey:        period,
		SendNotification: flagNotify,
	})
	if !output.Saved {
		return fmt.Errorf("regenerate report: %w", output.Err)
	}

	return printJSON(cmd.OutOrStdout(), dto.RegenerateReportResponse{
		Created:   output.Created,
		Generated: output.Generated,
		Notified:  output.Notified,
		Report:    dto.ToReportResponse(output.Report),
	})
}
