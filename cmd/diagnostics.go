package cmd

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/output"
	"github.com/spf13/cobra"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "View recovered console failures",
	Long: `Shows the diagnostic event log. The console records recovered failures
here (like a panicking menu action) instead of surfacing them in the UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := getBaseDir()

		if clearFlag, _ := cmd.Flags().GetBool("clear"); clearFlag {
			if err := db.ClearDiagnosticEvents(dir); err != nil {
				output.Error("failed to clear diagnostic events: %v", err)
				return err
			}
			fmt.Println("Cleared diagnostic event log")
			return nil
		}

		events, err := db.ReadDiagnosticEvents(dir)
		if err != nil {
			output.Error("failed to read diagnostic events: %v", err)
			return err
		}

		if len(events) == 0 {
			fmt.Println("No diagnostic events logged")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(events)
		}

		fmt.Printf("Diagnostic events (%d):\n\n", len(events))
		for _, e := range events {
			ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			fmt.Printf("%s  %s\n", ts, e.Source)
			if e.EntityID != "" {
				fmt.Printf("  Entity: %s\n", e.EntityID)
			}
			fmt.Printf("  Detail: %s\n\n", e.Detail)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)

	diagnosticsCmd.Flags().Bool("clear", false, "Clear the diagnostic log")
	diagnosticsCmd.Flags().Bool("json", false, "Output as JSON")
}
