package cli

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Long: `Display the subject, roles, and token expiry of the current session.

Examples:
  kulturactl whoami
  kulturactl whoami --json`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

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

	identity, ok := session.Identity()
	if !ok {
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"authenticated": false,
			})
		}
		printer.Info("not signed in")
		return nil
	}

	expires := time.Unix(identity.ExpiresAt, 0)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"authenticated": true,
			"subject":       identity.Subject,
			"roles":         identity.Roles,
			"expires_at":    expires.Format(time.RFC3339),
		})
	}

	printer.Print("subject:  %s", identity.Subject)
	printer.Print("roles:    %s", strings.Join(identity.Roles, ", "))
	printer.Print("expires:  %s", expires.Format(time.RFC3339))
	return nil
}
