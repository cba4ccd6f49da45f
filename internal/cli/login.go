package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kultura-platform/adminkit/gateway"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and persist the session",
	Long: `Exchange credentials for a bearer token and store it locally.

The password is read from --password, the KULTURACTL_PASSWORD environment
variable, or standard input, in that order.

Examples:
  kulturactl login alice@example.com
  kulturactl login alice@example.com --password-stdin < secret.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("password", "p", "", "account password (prefer --password-stdin)")
	loginCmd.Flags().Bool("password-stdin", false, "read the password from standard input")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	email := args[0]
	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Login(ctx, email, password); err != nil {
		if gateway.IsNetwork(err) {
			return fmt.Errorf("cannot reach %s: %w", cfg.API.BaseURL, err)
		}
		return err
	}

	identity, _ := session.Identity()
	printer.Success("signed in as %s", identity.Subject)
	if len(identity.Roles) > 0 {
		printer.Print("roles: %s", strings.Join(identity.Roles, ", "))
	}
	return nil
}

func resolvePassword(cmd *cobra.Command) (string, error) {
	if password, _ := cmd.Flags().GetString("password"); password != "" {
		return password, nil
	}
	if password := os.Getenv("KULTURACTL_PASSWORD"); password != "" {
		return password, nil
	}
	if fromStdin, _ := cmd.Flags().GetBool("password-stdin"); !fromStdin {
		fmt.Fprint(os.Stderr, "Password: ")
	}
	return readPasswordLine(cmd.Context())
}

func readPasswordLine(_ context.Context) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
