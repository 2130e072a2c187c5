package grouping

import (
	"testing"
	"time"

	"github.com/tgienger/todo/internal/models"
)

func todoAt(id int64, text string, at time.Time) models.Todo {
	return models.Todo{ID: id, Text: text, CreatedAt: at}
}

func TestGroupByDay(t *testing.T) {
	f := Formatter{Layout: DefaultLayout, Location: time.UTC, TodayLabel: DefaultTodayLabel}
	yesterday := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	todos := []models.Todo{
		todoAt(1, "old one", yesterday),
		todoAt(2, "new one", today),
		todoAt(3, "old two", yesterday.Add(-time.Hour)),
		todoAt(4, "new two", today.Add(time.Hour)),
	}

	groups := f.Group(todos)
	if len(groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(groups))
	}

	tests := []struct {
		key  string
		date time.Time
		ids  []int64
	}{
		{"Oct 18, 2026", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), []int64{1, 3}},
		{"Oct 19, 2026", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), []int64{2, 4}},
	}
	for i, tt := range tests {
		g := groups[i]
		if g.Key != tt.key {
			t.Errorf("group %d key: got %q, want %q", i, g.Key, tt.key)
		}
		if !g.Date.Equal(tt.date) {
			t.Errorf("group %d date: got %v, want %v", i, g.Date, tt.date)
		}
		if len(g.Todos) != len(tt.ids) {
			t.Fatalf("group %d size: got %d, want %d", i, len(g.Todos), len(tt.ids))
		}
		for j, id := range tt.ids {
			if g.Todos[j].ID != id {
				t.Errorf("group %d todo %d: got id %d, want %d", i, j, g.Todos[j].ID, id)
			}
		}
	}
}

func TestGroupEmpty(t *testing.T) {
	if groups := NewFormatter("").Group(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no todos", len(groups))
	}
}

func TestGroupUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	at := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC) // Oct 19 05:00 in Tokyo

	utc := Formatter{Layout: "2006-01-02", Location: time.UTC}
	jst := Formatter{Layout: "2006-01-02", Location: tokyo}

	if got := utc.Key(at); got != "2026-10-18" {
		t.Errorf("utc key: got %q", got)
	}
	if got := jst.Key(at); got != "2026-10-19" {
		t.Errorf("jst key: got %q", got)
	}
}

func TestLabel(t *testing.T) {
	f := Formatter{Layout: DefaultLayout, Location: time.UTC, TodayLabel: "Today"}
	now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

	groups := f.Group([]models.Todo{
		todoAt(1, "a", now.AddDate(0, 0, -1)),
		todoAt(2, "b", now.Add(-10*time.Hour)),
	})

	if got := f.Label(groups[0], now); got != "Oct 18, 2026" {
		t.Errorf("past label: got %q", got)
	}
	if got := f.Label(groups[1], now); got != "Today" {
		t.Errorf("today label: got %q", got)
	}
	if groups[1].Key != "Oct 19, 2026" {
		t.Errorf("label must not change the key, got %q", groups[1].Key)
	}
}

func TestZeroFormatterDefaults(t *testing.T) {
	var f Formatter
	now := time.Now()
	groups := f.Group([]models.Todo{todoAt(1, "a", now)})
	if got := f.Label(groups[0], now); got != DefaultTodayLabel {
		t.Errorf("label: got %q, want %q", got, DefaultTodayLabel)
	}
	if got, want := f.Key(now), now.In(time.Local).Format(DefaultLayout); got != want {
		t.Errorf("key: got %q, want %q", got, want)
	}
}

func TestLayoutDoesNotChangeBuckets(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	todos := []models.Todo{
		todoAt(1, "morning", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)),
		todoAt(2, "late", time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)),
		todoAt(3, "yesterday", time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		layout string
		labels []string
	}{
		{"2006-01-02 15:04", []string{"Today", "2026-10-18 00:00"}},
		{"Jan 2006", []string{"Today", "Oct 2026"}},
		{DefaultLayout, []string{"Today", "Oct 18, 2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			f := Formatter{Layout: tt.layout, Location: time.UTC, TodayLabel: "Today"}
			groups := f.Group(todos)
			if len(groups) != 2 {
				t.Fatalf("groups: got %d, want 2", len(groups))
			}
			if len(groups[0].Todos) != 2 || len(groups[1].Todos) != 1 {
				t.Errorf("sizes: got %d and %d, want 2 and 1", len(groups[0].Todos), len(groups[1].Todos))
			}
			for i, want := range tt.labels {
				if got := f.Label(groups[i], now); got != want {
					t.Errorf("label %d: got %q, want %q", i, got, want)
				}
			}
		})
	}
}
