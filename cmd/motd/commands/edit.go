package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/internal/editor"
	"github.com/thoreinstein/motd/internal/errors"
)

// openEditor runs the user's editor. Replaced in tests.
var openEditor = editor.Open

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the dashboard document in your editor",
	Long: `Open the dashboard document in $EDITOR (or $VISUAL, nano, vi) and
check it once the editor exits.`,
	Example: `  # Edit the default document
  motd edit

  # Use a specific editor
  EDITOR="code --wait" motd edit

  See Also: motd check, motd init`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	path, err := resolveDocumentPath()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Location: %s\n", path)

	streams := editor.Stdio()
	streams.Out = w
	streams.Err = cmd.ErrOrStderr()
	if err := openEditor(cmd.Context(), path, streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	cfg, _, err := loadDashboard(cmd.Context(), currentSettings().Strict)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Document OK: %d sections\n", cfg.Len())
	return nil
}
