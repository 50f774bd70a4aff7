package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var sectionLabels = []string{"0 Banner", "1 Docker", "3 Last Run", "4 Filesystems"}

func TestSelectMany_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectMany("Sections", nil)
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("expected ErrNoOptions, got: %v", err)
	}
	if buf.Len() > 0 {
		t.Errorf("expected no output for empty list, got: %s", buf.String())
	}
}

func TestSelectMany_Prompt(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("2\n"), &buf)

	if _, err := s.SelectMany("Sections", sectionLabels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Sections:\n" +
		"  [1] 0 Banner\n" +
		"  [2] 1 Docker\n" +
		"  [3] 3 Last Run\n" +
		"  [4] 4 Filesystems\n" +
		"Select [all]: "
	if buf.String() != want {
		t.Errorf("prompt =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestSelectMany_ValidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "empty selects all", input: "\n", want: []int{0, 1, 2, 3}},
		{name: "all keyword", input: "ALL\n", want: []int{0, 1, 2, 3}},
		{name: "single", input: "3\n", want: []int{2}},
		{name: "comma list", input: "4,1\n", want: []int{0, 3}},
		{name: "spaces", input: " 1  2 \n", want: []int{0, 1}},
		{name: "range", input: "2-4\n", want: []int{1, 2, 3}},
		{name: "overlap deduplicated", input: "1-2, 2, 1\n", want: []int{0, 1}},
		{name: "no trailing newline", input: "3", want: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			got, err := s.SelectMany("Sections", sectionLabels)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSelectMany_InvalidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "zero", input: "0\n", wantMsg: "out of range"},
		{name: "too large", input: "5\n", wantMsg: "out of range"},
		{name: "not a number", input: "banner\n", wantMsg: "not a number"},
		{name: "backwards range", input: "3-1\n", wantMsg: "backwards"},
		{name: "open range", input: "2-\n", wantMsg: "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			_, err := s.SelectMany("Sections", sectionLabels)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("expected ErrInvalidSelection, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestSelectMany_Cancelled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectMany("Sections", sectionLabels)
	if !errors.Is(err, ErrSelectionCancelled) {
		t.Errorf("expected ErrSelectionCancelled, got: %v", err)
	}
}
