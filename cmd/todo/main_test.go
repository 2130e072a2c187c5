package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todo/internal/ui/styles"
)

// isolate keeps config lookup away from the real user and working directory
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"TODO_THEME", "TODO_DATE_FORMAT", "TODO_TODAY_LABEL", "TODO_LOG_FILE", "TODO_LOG_LEVEL", "TODO_CONFIRM_DELETE"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { styles.Current = styles.TokyoNight })
	return dir
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     int
		contains string
	}{
		{"version", []string{"--version"}, 0, "todo dev"},
		{"help", []string{"-h"}, 0, ""},
		{"unknown flag", []string{"-nope"}, 2, "Error loading config"},
		{"bad log level", []string{"-log-level", "chatty"}, 2, "Error loading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr, nil); got != tt.want {
				t.Errorf("exit code: got %d, want %d (stderr: %s)", got, tt.want, stderr.String())
			}
			if out := stdout.String() + stderr.String(); !strings.Contains(out, tt.contains) {
				t.Errorf("output missing %q: %s", tt.contains, out)
			}
		})
	}
}

func TestRunLogsErrorBeforeExit(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "todo.log")

	var stderr bytes.Buffer
	code := run([]string{"-log-file", logPath, "-theme", "solarized"}, io.Discard, &stderr, nil)
	if code != 2 {
		t.Fatalf("exit code: got %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Error loading theme") {
		t.Errorf("stderr: %s", stderr.String())
	}
	if out := readLog(t, logPath); !strings.Contains(out, "invalid theme") {
		t.Errorf("log missing the theme error: %s", out)
	}
}

func TestRunSession(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "todo.log")

	// type a todo, submit it, then ctrl+c
	input := strings.NewReader("milk\r\x03")
	code := run(
		[]string{"-log-file", logPath, "-log-level", "debug", "--no-alt-screen"},
		io.Discard, io.Discard,
		[]tea.ProgramOption{tea.WithInput(input), tea.WithOutput(io.Discard)},
	)
	if code != 0 {
		t.Fatalf("exit code: got %d, want 0", code)
	}

	out := readLog(t, logPath)
	for _, want := range []string{"session started", "todo added", "session ended"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
