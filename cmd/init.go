package cmd

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/output"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a shopdesk store in the current directory",
	Long:  `Creates the .shopdesk/ directory and an empty SQLite store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Initialize(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			if err := database.Seed(); err != nil {
				output.Error("seed failed: %v", err)
				return err
			}
			fmt.Println("Initialized shopdesk store with demo data")
			return nil
		}

		fmt.Println("Initialized shopdesk store")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("seed", false, "Populate the store with demo data")
}
