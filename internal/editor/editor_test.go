package editor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetectEditor_EnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "nvim")
	t.Setenv("VISUAL", "code")

	got := detectEditor()
	if got != "nvim" {
		t.Errorf("detectEditor() = %q, want %q", got, "nvim")
	}
}

func TestDetectEditor_EnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")

	got := detectEditor()
	if got != "code" {
		t.Errorf("detectEditor() = %q, want %q", got, "code")
	}
}

func TestDetectEditor_BlankEditorFallsThrough(t *testing.T) {
	t.Setenv("EDITOR", "   ")
	t.Setenv("VISUAL", "hx")

	got := detectEditor()
	if got != "hx" {
		t.Errorf("detectEditor() = %q, want %q", got, "hx")
	}
}

func TestDetectEditor_FallbackNano(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	got := detectEditor()

	// Should be nano if available, otherwise vi
	if _, err := exec.LookPath("nano"); err == nil {
		if got != "nano" {
			t.Errorf("detectEditor() = %q, want %q (nano available)", got, "nano")
		}
	} else if got != "vi" {
		t.Errorf("detectEditor() = %q, want %q (nano not available)", got, "vi")
	}
}

func TestCommand_SplitsFlags(t *testing.T) {
	t.Setenv("EDITOR", "code --wait  --new-window")

	name, args := Command()
	if name != "code" {
		t.Errorf("name = %q, want code", name)
	}
	if strings.Join(args, " ") != "--wait --new-window" {
		t.Errorf("args = %q", args)
	}
}

func TestCommand_Quoted(t *testing.T) {
	t.Setenv("EDITOR", `"/opt/My Editor/bin/edit" -n`)

	name, args := Command()
	if name != "/opt/My Editor/bin/edit" {
		t.Errorf("name = %q, want quoted path", name)
	}
	if len(args) != 1 || args[0] != "-n" {
		t.Errorf("args = %q, want [-n]", args)
	}
}

func TestCommand_UnbalancedQuote(t *testing.T) {
	t.Setenv("EDITOR", `vim "unterminated`)

	name, args := Command()
	if name != `vim "unterminated` || len(args) != 0 {
		t.Errorf("Command() = %q %q, want raw value", name, args)
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")

	// The mock editor echoes its arguments and appends a section.
	script := "#!/bin/sh\necho \"$@\"\nfor f; do :; done\necho '[last_run]' >> \"$f\"\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", mockEditor+" --flag")

	target := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Open(context.Background(), target, Streams{Out: &out, Err: &out}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "--flag "+target {
		t.Errorf("editor args = %q, want %q", got, "--flag "+target)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[last_run]\n" {
		t.Errorf("document = %q, want edit applied", data)
	}
}

func TestOpen_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")
	t.Setenv("VISUAL", "")

	err := Open(context.Background(), "config.toml", Streams{})
	if err == nil {
		t.Error("expected error for non-existent editor, got nil")
	}
}
