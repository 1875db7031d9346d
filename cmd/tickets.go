package cmd

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/internal/output"
	"github.com/spf13/cobra"
)

var ticketStatusFlag = statusListFlag{
	name: "ticket",
	valid: func(s string) bool {
		return models.IsValidTicketStatus(models.TicketStatus(s))
	},
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List and update support tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		opts := db.ListTicketsOptions{SortBy: "priority"}
		for _, s := range ticketStatusFlag.values {
			opts.Status = append(opts.Status, models.TicketStatus(s))
		}

		tickets, err := database.ListTickets(opts)
		if err != nil {
			output.Error("list failed: %v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(tickets)
		}

		width := output.TerminalWidth()
		for i := range tickets {
			fmt.Println(output.Truncate(output.FormatTicketShort(&tickets[i]), width))
		}
		if len(tickets) == 0 {
			fmt.Println("No tickets found")
		}
		return nil
	},
}

var ticketStatusCmd = &cobra.Command{
	Use:   "status <ticket-id> <open|pending|solved>",
	Short: "Set a ticket's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.TicketStatus(args[1])
		if !models.IsValidTicketStatus(status) {
			err := fmt.Errorf("invalid ticket status: %s", args[1])
			output.Error("%v", err)
			return err
		}

		database, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		if err := database.SetTicketStatus(args[0], status); err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Printf("Ticket %s → %s\n", args[0], status)
		return nil
	},
}

var ticketShowCmd = &cobra.Command{
	Use:   "show <ticket-id>",
	Short: "Show a ticket's full body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		ticket, err := database.GetTicket(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(ticket)
		}

		fmt.Println(output.FormatTicketShort(ticket))
		fmt.Println()
		fmt.Println(ticket.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	ticketsCmd.AddCommand(ticketStatusCmd)
	ticketsCmd.AddCommand(ticketShowCmd)

	ticketsCmd.Flags().VarP(&ticketStatusFlag, "status", "s", "Filter by status (repeatable)")
	ticketsCmd.Flags().Bool("json", false, "Output as JSON")
	ticketShowCmd.Flags().Bool("json", false, "Output as JSON")
}
