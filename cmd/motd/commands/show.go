package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/internal/cli/prompt"
	"github.com/thoreinstein/motd/internal/component"
	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/ordered"
)

// showPick holds the value of the --pick flag.
var showPick bool

// findSections lets the user choose sections. Replaced in tests.
var findSections = pickSections

func init() {
	showCmd.Flags().BoolVar(&showPick, "pick", false, "choose sections interactively")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the dashboard",
	Long: `Draw every section of the dashboard document in the order it was written.

A section that fails (a missing command, an unmounted filesystem) is
reported on stderr and the rest of the dashboard is still drawn.`,
	Example: `  # Draw the dashboard
  motd show

  # Draw a different document
  motd show --config ~/motd/ssh.yaml

  # Choose which sections to draw
  motd show --pick

  See Also: motd check`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s := currentSettings()

	cfg, _, err := loadDashboard(ctx, s.Strict)
	if err != nil {
		return err
	}

	sections := cfg.Sections()
	if showPick {
		sections, err = findSections(sections)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, prompt.ErrSelectionCancelled) {
				return nil
			}
			return errors.Wrap(err, "picking sections")
		}
	}

	out := cmd.OutOrStdout()
	runner := component.NewRunner(component.NewEnv(s, logging.SupportsColor(out)))
	runner.Add(sections...)
	report := runner.Run(ctx, out)

	if report.HasFailures() {
		failed := make([]string, 0, report.Summary.Failed)
		for _, res := range report.Failed() {
			failed = append(failed, res.Section)
		}
		err := errors.Newf("%d of %d sections failed: %s",
			report.Summary.Failed, len(report.Results), strings.Join(failed, ", "))
		return errors.NewSystemError(err, "Run with -v for details")
	}
	return nil
}

// pickSections uses the full-screen finder on a terminal and a numbered
// prompt otherwise.
func pickSections(sections []ordered.Section) ([]ordered.Section, error) {
	if logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stdout) {
		return fuzzyFindSections(sections)
	}
	return promptSections(prompt.NewSelector(), sections)
}

func sectionLabel(s ordered.Section) string {
	return fmt.Sprintf("%d %s", s.Position, s.Kind.Title())
}

// promptSections asks for section numbers on a plain line prompt.
func promptSections(sel *prompt.Selector, sections []ordered.Section) ([]ordered.Section, error) {
	if len(sections) == 0 {
		return sections, nil
	}

	labels := make([]string, len(sections))
	for i, s := range sections {
		labels[i] = sectionLabel(s)
	}
	idxs, err := sel.SelectMany("Sections", labels)
	if err != nil {
		return nil, err
	}

	picked := make([]ordered.Section, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, sections[i])
	}
	return picked, nil
}

// fuzzyFindSections opens a multi-select finder over sections and returns
// the chosen ones in document order.
func fuzzyFindSections(sections []ordered.Section) ([]ordered.Section, error) {
	if len(sections) == 0 {
		return sections, nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		sections,
		func(i int) string {
			return sectionLabel(sections[i])
		},
		fuzzyfinder.WithPromptString("sections> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeSection(sections[i])
		}),
	)
	if err != nil {
		return nil, err
	}

	sort.Ints(idxs)
	picked := make([]ordered.Section, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, sections[i])
	}
	return picked, nil
}
