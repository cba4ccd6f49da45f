package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kultura-platform/adminkit/events"
	"github.com/kultura-platform/adminkit/internal/output"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage platform events",
	Long: `List, inspect, and administer the event catalog.

Examples:
  kulturactl events list
  kulturactl events search "jazz"
  kulturactl events get 12
  kulturactl events create --title "Nuit du jazz" --start 2026-09-12 --end 2026-09-13 --capacity 250
  kulturactl events delete 12`,
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all events",
	Args:  cobra.NoArgs,
	RunE:  runEventsList,
}

var eventsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search events by title",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsSearch,
}

var eventsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsGet,
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event (admin only)",
	Args:  cobra.NoArgs,
	RunE:  runEventsCreate,
}

var eventsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an event (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsUpdate,
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsDelete,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd, eventsSearchCmd, eventsGetCmd,
		eventsCreateCmd, eventsUpdateCmd, eventsDeleteCmd)

	for _, cmd := range []*cobra.Command{eventsCreateCmd, eventsUpdateCmd} {
		cmd.Flags().String("title", "", "event title")
		cmd.Flags().String("description", "", "event description")
		cmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
		cmd.Flags().String("end", "", "end date (YYYY-MM-DD)")
		cmd.Flags().String("image", "", "image filename")
		cmd.Flags().Int("capacity", 0, "seat capacity")
		cmd.Flags().Int64("address-id", 0, "address reference")
		cmd.Flags().Int64("organizer-id", 0, "organizer account reference")
		cmd.Flags().Int64("tariff-id", 0, "tariff reference")
		cmd.Flags().Int64("type-id", 0, "event type reference")
	}
	_ = eventsCreateCmd.MarkFlagRequired("title")
	_ = eventsCreateCmd.MarkFlagRequired("start")
	_ = eventsCreateCmd.MarkFlagRequired("end")
}

func runEventsList(cmd *cobra.Command, args []string) error {
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

	list, err := events.NewClient(session.Gateway()).List(ctx)
	if err != nil {
		return err
	}

	renderEventTable(list)
	printer.Print("")
	printer.Info("%d event(s)", len(list))
	return nil
}

func runEventsSearch(cmd *cobra.Command, args []string) error {
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

	list, err := events.NewClient(session.Gateway()).Search(ctx, args[0])
	if err != nil {
		return err
	}

	if len(list) == 0 {
		printer.Info("no events matching %q", args[0])
		return nil
	}
	renderEventTable(list)
	return nil
}

func runEventsGet(cmd *cobra.Command, args []string) error {
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

	event, err := events.NewClient(session.Gateway()).Get(ctx, id)
	if err != nil {
		return err
	}

	printer.Header(event.Title)
	printer.Print("id:           %d", event.ID)
	printer.Print("dates:        %s to %s", event.StartDate, event.EndDate)
	printer.Print("capacity:     %d", event.Capacity)
	if event.Description != "" {
		printer.Print("description:  %s", event.Description)
	}
	if event.Address != nil {
		printer.Print("address:      %s, %s %s", event.Address.Street, event.Address.PostalCode, event.Address.City)
	}
	if event.Tariff != nil {
		printer.Print("tariff:       %.2f %s (%s)", event.Tariff.Amount, event.Tariff.Currency, event.Tariff.Kind)
	}
	if event.Type != nil {
		printer.Print("type:         %s", event.Type.Name)
	}
	if event.Organizer != nil {
		printer.Print("organizer:    %s %s", event.Organizer.FirstName, event.Organizer.LastName)
	}
	return nil
}

func runEventsCreate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	created, err := events.NewClient(session.Gateway()).Create(ctx, eventInputFromFlags(cmd))
	if err != nil {
		return err
	}

	printer.Success("created event %d: %s", created.ID, created.Title)
	return nil
}

func runEventsUpdate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	client := events.NewClient(session.Gateway())

	// The backend replaces the whole record, so start from the current one
	// and overlay only the flags that were set.
	current, err := client.Get(ctx, id)
	if err != nil {
		return err
	}
	input := events.Input{
		Title:       current.Title,
		Description: current.Description,
		StartDate:   current.StartDate,
		EndDate:     current.EndDate,
		Image:       current.Image,
		Capacity:    current.Capacity,
		AddressID:   current.AddressID,
		OrganizerID: current.OrganizerID,
		TariffID:    current.TariffID,
		TypeID:      current.TypeID,
	}
	overlayEventFlags(cmd, &input)

	updated, err := client.Update(ctx, id, input)
	if err != nil {
		return err
	}

	printer.Success("updated event %d: %s", id, updated.Title)
	return nil
}

func runEventsDelete(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := events.NewClient(session.Gateway()).Delete(ctx, id); err != nil {
		return err
	}

	printer.Success("deleted event %d", id)
	return nil
}

func renderEventTable(list []events.Event) {
	table := output.NewQuietTable([]string{"ID", "Title", "Start", "End", "Capacity"}, quiet)
	for _, event := range list {
		table.AddRow([]string{
			strconv.FormatInt(event.ID, 10),
			event.Title,
			event.StartDate,
			event.EndDate,
			strconv.Itoa(event.Capacity),
		})
	}
	table.Render()
}

func eventInputFromFlags(cmd *cobra.Command) events.Input {
	var input events.Input
	overlayEventFlags(cmd, &input)
	return input
}

func overlayEventFlags(cmd *cobra.Command, input *events.Input) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		input.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		input.Description, _ = flags.GetString("description")
	}
	if flags.Changed("start") {
		input.StartDate, _ = flags.GetString("start")
	}
	if flags.Changed("end") {
		input.EndDate, _ = flags.GetString("end")
	}
	if flags.Changed("image") {
		input.Image, _ = flags.GetString("image")
	}
	if flags.Changed("capacity") {
		input.Capacity, _ = flags.GetInt("capacity")
	}
	if flags.Changed("address-id") {
		input.AddressID, _ = flags.GetInt64("address-id")
	}
	if flags.Changed("organizer-id") {
		input.OrganizerID, _ = flags.GetInt64("organizer-id")
	}
	if flags.Changed("tariff-id") {
		input.TariffID, _ = flags.GetInt64("tariff-id")
	}
	if flags.Changed("type-id") {
		input.TypeID, _ = flags.GetInt64("type-id")
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
