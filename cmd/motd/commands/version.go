package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("motd version {{.Version}}\n")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of motd.`,
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "motd version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:  %s\n", cmd.Date)
	},
}
