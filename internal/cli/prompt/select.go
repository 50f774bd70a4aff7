// Package prompt provides line-based interactive prompts for terminals
// where a full-screen picker cannot run.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/motd/internal/errors"
)

// Sentinel errors for selection.
var (
	ErrNoOptions          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectMany lists labels and reads a selection such as "1,3" or "2-4".
// An empty answer selects everything. The result holds zero-based indices
// in ascending order without duplicates.
//
// Returns:
//   - ErrNoOptions if labels is empty
//   - ErrInvalidSelection if a number is malformed or out of range
//   - ErrSelectionCancelled if input ends before a line is read (e.g., Ctrl+D)
func (s *Selector) SelectMany(title string, labels []string) ([]int, error) {
	if len(labels) == 0 {
		return nil, ErrNoOptions
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i, label := range labels {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, label)
	}
	fmt.Fprintf(s.writer, "Select [all]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "reading selection")
		}
		if input == "" {
			return nil, ErrSelectionCancelled
		}
	}

	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "all") {
		all := make([]int, len(labels))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	return parseSelection(input, len(labels))
}

// parseSelection turns "1, 3-4" into zero-based indices.
func parseSelection(input string, n int) ([]int, error) {
	var picked []int
	for _, part := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' }) {
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := selectionNumber(lo, n)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = selectionNumber(hi, n); err != nil {
				return nil, err
			}
			if last < first {
				return nil, errors.Wrapf(ErrInvalidSelection, "range %q runs backwards", part)
			}
		}
		for i := first; i <= last; i++ {
			picked = append(picked, i-1)
		}
	}

	slices.Sort(picked)
	return slices.Compact(picked), nil
}

func selectionNumber(s string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", s)
	}
	if v < 1 || v > n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", v, n)
	}
	return v, nil
}
