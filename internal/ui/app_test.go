package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/grouping"
	"github.com/tgienger/todo/internal/logging"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

func newTestApp(t *testing.T) (*App, *store.Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, log.DebugLevel).Logger
	now := func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	st := store.New(store.WithClock(now), store.WithLogger(logger))
	app := NewApp(st, logger, views.Options{
		Formatter: grouping.Formatter{Layout: grouping.DefaultLayout, Location: time.UTC, TodayLabel: "Today"},
		Now:       now,
	})
	return app, st, &buf
}

func TestAppLogsSession(t *testing.T) {
	app, _, buf := newTestApp(t)

	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := buf.String()
	for _, want := range []string{"session started", "window resized", "width=100"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if app.width != 100 || app.height != 30 {
		t.Errorf("size: got %dx%d, want 100x30", app.width, app.height)
	}
}

func TestAppDelegatesToTodoList(t *testing.T) {
	app, st, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	for _, r := range "water plants" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model != app {
		t.Error("Update should return the app itself")
	}

	todos := st.Todos()
	if len(todos) != 1 || todos[0].Text != "water plants" {
		t.Fatalf("todos: %+v", todos)
	}
	if !strings.Contains(app.View(), "water plants") {
		t.Errorf("view missing the new todo:\n%s", app.View())
	}
}
