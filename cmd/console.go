package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/pkg/console"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"ui"},
	Short:   "Open the interactive admin console",
	Long: `Opens the full-screen terminal console with the catalog, reviews, and
tickets screens. Rows have contextual menus; open them with the mouse via the
⋯ button or with m/enter on the selected row.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	database, err := db.Open(getBaseDir())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer database.Close()

	// Long-running interactive process; keep the connection pool small
	database.SetMaxOpenConns(1)

	p := tea.NewProgram(
		console.New(database),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
