package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kultura-platform/adminkit/internal/output"
	"github.com/kultura-platform/adminkit/reservations"
)

var reservationsCmd = &cobra.Command{
	Use:     "reservations",
	Aliases: []string{"res"},
	Short:   "Manage your reservations",
	Long: `List and cancel the signed-in user's reservations.

Examples:
  kulturactl reservations list
  kulturactl reservations cancel 42`,
}

var reservationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reservations",
	Args:  cobra.NoArgs,
	RunE:  runReservationsList,
}

var reservationsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	RunE:  runReservationsCancel,
}

func init() {
	rootCmd.AddCommand(reservationsCmd)
	reservationsCmd.AddCommand(reservationsListCmd, reservationsCancelCmd)
}

func runReservationsList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, "")
	if err != nil {
		return err
	}
	defer session.Close()

	list, err := reservations.NewClient(session.Gateway()).List(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		printer.Info("no reservations")
		return nil
	}

	table := output.NewQuietTable([]string{"Reference", "Event", "Date", "Status", "Places", "Price"}, quiet)
	for _, reservation := range list {
		table.AddRow([]string{
			reservation.Reference(),
			reservation.Event,
			reservation.Date,
			reservation.Status,
			strconv.Itoa(reservation.Places),
			reservation.Price,
		})
	}
	table.Render()
	return nil
}

func runReservationsCancel(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, "")
	if err != nil {
		return err
	}
	defer session.Close()

	client := reservations.NewClient(session.Gateway())
	reservation, err := client.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := client.Cancel(ctx, id); err != nil {
		return err
	}

	printer.Success("cancelled %s (%s)", reservation.Reference(), reservation.Event)
	return nil
}
