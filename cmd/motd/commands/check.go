package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/internal/document"
	"github.com/thoreinstein/motd/internal/errors"
)

var (
	checkStrict bool
	checkJSON   bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "reject unknown and repeated section keys")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dashboard document",
	Long: `Decode the dashboard document without running any section and list
the sections it contains with their positions.

Positions count every top-level key, including unknown ones, so a gap in
the numbering marks a key that was skipped. With --strict, unknown and
repeated keys are errors.`,
	Example: `  # Validate the default document
  motd check

  # Fail on unknown keys
  motd check --strict

  # Machine-readable output
  motd check --json

  See Also: motd show, motd init`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

type checkSectionJSON struct {
	Section  string `json:"section"`
	Position int    `json:"position"`
}

type checkResultJSON struct {
	Document string             `json:"document"`
	Format   string             `json:"format"`
	Sections []checkSectionJSON `json:"sections"`
	Skipped  []string           `json:"skipped"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	strict := checkStrict || currentSettings().Strict

	cfg, path, err := loadDashboard(cmd.Context(), strict)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	sections := cfg.Sections()

	if checkJSON {
		result := checkResultJSON{
			Document: path,
			Format:   string(document.FormatFromPath(path)),
			Sections: make([]checkSectionJSON, 0, len(sections)),
			Skipped:  cfg.Skipped,
		}
		if result.Skipped == nil {
			result.Skipped = []string{}
		}
		for _, s := range sections {
			result.Sections = append(result.Sections, checkSectionJSON{
				Section:  s.Kind.String(),
				Position: s.Position,
			})
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return nil
	}

	fmt.Fprintf(w, "%s (%s)\n", path, document.FormatFromPath(path))
	if len(sections) == 0 {
		fmt.Fprintln(w, "  no recognized sections")
	}
	for _, s := range sections {
		fmt.Fprintf(w, "  %d  %s\n", s.Position, s.Kind)
	}
	if len(cfg.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped unknown keys: %s\n", strings.Join(cfg.Skipped, ", "))
	}
	return nil
}
