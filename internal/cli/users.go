package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kultura-platform/adminkit/internal/output"
	"github.com/kultura-platform/adminkit/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform accounts (admin only)",
	Long: `List, inspect, and administer accounts. All subcommands require the
ADMIN role.

Examples:
  kulturactl users list
  kulturactl users get 7
  kulturactl users create --last-name Dupont --first-name Marie --email marie@example.com --password secret --role-id 2
  kulturactl users delete 7`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Args:  cobra.NoArgs,
	RunE:  runUsersList,
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersGet,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	RunE:  runUsersCreate,
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersUpdate,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)

	for _, cmd := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		cmd.Flags().String("last-name", "", "family name")
		cmd.Flags().String("first-name", "", "given name")
		cmd.Flags().String("email", "", "email address")
		cmd.Flags().String("password", "", "account password")
		cmd.Flags().Int64("role-id", 0, "role reference")
	}
	_ = usersCreateCmd.MarkFlagRequired("last-name")
	_ = usersCreateCmd.MarkFlagRequired("first-name")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")
	_ = usersCreateCmd.MarkFlagRequired("role-id")
}

func runUsersList(cmd *cobra.Command, args []string) error {
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

	list, err := users.NewClient(session.Gateway()).List(ctx)
	if err != nil {
		return err
	}

	table := output.NewQuietTable([]string{"ID", "Name", "Email", "Roles"}, quiet)
	for _, user := range list {
		table.AddRow([]string{
			strconv.FormatInt(user.ID, 10),
			strings.TrimSpace(user.FirstName + " " + user.LastName),
			user.Email,
			roleLabels(user.Roles),
		})
	}
	table.Render()
	printer.Print("")
	printer.Info("%d account(s)", len(list))
	return nil
}

func runUsersGet(cmd *cobra.Command, args []string) error {
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

	user, err := users.NewClient(session.Gateway()).Get(ctx, id)
	if err != nil {
		return err
	}

	printer.Print("id:     %d", user.ID)
	printer.Print("name:   %s %s", user.FirstName, user.LastName)
	printer.Print("email:  %s", user.Email)
	printer.Print("roles:  %s", roleLabels(user.Roles))
	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	lastName, _ := flags.GetString("last-name")
	firstName, _ := flags.GetString("first-name")
	email, _ := flags.GetString("email")
	password, _ := flags.GetString("password")
	roleID, _ := flags.GetInt64("role-id")

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	created, err := users.NewClient(session.Gateway()).Create(ctx, users.CreateInput{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Password:  password,
		Role:      users.Ref{ID: roleID},
	})
	if err != nil {
		return err
	}

	printer.Success("created account %d: %s", created.ID, created.Email)
	return nil
}

func runUsersUpdate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var input users.UpdateInput
	flags := cmd.Flags()
	if flags.Changed("last-name") {
		v, _ := flags.GetString("last-name")
		input.LastName = &v
	}
	if flags.Changed("first-name") {
		v, _ := flags.GetString("first-name")
		input.FirstName = &v
	}
	if flags.Changed("email") {
		v, _ := flags.GetString("email")
		input.Email = &v
	}
	if flags.Changed("password") {
		v, _ := flags.GetString("password")
		input.Password = &v
	}
	if flags.Changed("role-id") {
		v, _ := flags.GetInt64("role-id")
		input.Role = &users.Ref{ID: v}
	}

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	updated, err := users.NewClient(session.Gateway()).Update(ctx, id, input)
	if err != nil {
		return err
	}

	printer.Success("updated account %d: %s", id, updated.Email)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
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

	if err := users.NewClient(session.Gateway()).Delete(ctx, id); err != nil {
		return err
	}

	printer.Success("deleted account %d", id)
	return nil
}

func roleLabels(roles []users.Role) string {
	if len(roles) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(roles))
	for _, role := range roles {
		labels = append(labels, role.Label())
	}
	return strings.Join(labels, ", ")
}
