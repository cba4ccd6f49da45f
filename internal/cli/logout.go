package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	Long: `Clear the locally stored token and identity.

Logging out when no session exists is not an error.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	defer session.Close()

	wasAuthenticated := session.IsAuthenticated()
	if err := session.Logout(ctx); err != nil {
		return err
	}

	if wasAuthenticated {
		printer.Success("signed out")
	} else {
		printer.Info("no active session")
	}
	return nil
}
