package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/internal/document"
	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/paths"
	"github.com/thoreinstein/motd/pkg/fileutil"
)

var (
	initFormat string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", "toml", "document format: toml, yaml")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing document")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter dashboard document",
	Long: `Write a sample dashboard document with one of each section.

The document goes to --config if given, otherwise to config.toml (or
config.yaml) in the motd config directory. An existing document is left
alone unless --force is given.`,
	Example: `  # Create ~/.config/motd/config.toml
  motd init

  # Create a YAML document instead
  motd init --format yaml

  # Replace an existing document
  motd init --force

  See Also: motd check, motd show`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

const sampleTOML = `# Sections are drawn in the order they appear in this file.

[banner]
color = "light_red"
command = "hostname"

[filesystems]
root = "/"

[docker]
# container name = label
nginx = "Web server"

[last_login]
root = 2

[last_run]
`

const sampleYAML = `# Sections are drawn in the order they appear in this file.

banner:
  color: light_red
  command: hostname

filesystems:
  root: /

docker:
  # container name: label
  nginx: Web server

last_login:
  root: 2

last_run: {}
`

// sampleDocument returns the starter document for format.
func sampleDocument(format document.Format) []byte {
	if format == document.FormatYAML {
		return []byte(sampleYAML)
	}
	return []byte(sampleTOML)
}

func runInit(cmd *cobra.Command, _ []string) error {
	format, err := document.ParseFormat(initFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format toml or --format yaml")
	}

	path := documentFlag
	if path == "" {
		path = paths.DefaultDocumentPath(string(format))
	}

	w := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(w, "Document already exists at %s\n", path)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+filepath.Dir(path))
	}
	if err := fileutil.AtomicWriteFile(path, sampleDocument(format), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing document"), "Check permissions on "+path)
	}

	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}
