package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kultura-platform/adminkit/files"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded media (admin only)",
	Long: `Upload, list, and delete event images on the backend.

Uploads accept image files (jpg, jpeg, png, gif, webp, bmp) up to 5MB.

Examples:
  kulturactl files upload ./poster.png
  kulturactl files list
  kulturactl files delete poster.png`,
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesUpload,
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded images",
	Args:  cobra.NoArgs,
	RunE:  runFilesList,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete an uploaded image",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesUploadCmd, filesListCmd, filesDeleteCmd)
}

func runFilesUpload(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	filename := filepath.Base(path)

	// Validate before opening a session so rejected files fail fast.
	if err := files.ValidateImage(filename, info.Size()); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := files.NewClient(session.Gateway()).Upload(ctx, filename, info.Size(), f)
	if err != nil {
		return err
	}

	printer.Success("uploaded %s", result.Filename)
	if result.URL != "" {
		printer.Print("url: %s", result.URL)
	}
	return nil
}

func runFilesList(cmd *cobra.Command, args []string) error {
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

	listing, err := files.NewClient(session.Gateway()).List(ctx)
	if err != nil {
		return err
	}

	if listing.Count == 0 {
		printer.Info("no uploaded files")
		return nil
	}
	for _, name := range listing.Files {
		printer.Print("%s", name)
	}
	printer.Print("")
	printer.Info("%d file(s) in %s", listing.Count, listing.Folder)
	return nil
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	filename := args[0]

	ctx := cmd.Context()
	session, err := openAuthenticated(ctx, printer, roleAdmin)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := files.NewClient(session.Gateway()).Delete(ctx, filename); err != nil {
		return err
	}

	printer.Success("deleted %s", filename)
	return nil
}
