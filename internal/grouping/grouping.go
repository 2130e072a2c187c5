// Package grouping partitions todos into calendar-day buckets for display.
package grouping

import (
	"time"

	"github.com/tgienger/todo/internal/models"
)

const (
	DefaultLayout     = "Jan 2, 2006"
	DefaultTodayLabel = "Today"
)

// Group is the set of todos created on one calendar day.
// Date is midnight of that day and identifies the group; Key is the
// heading text rendered with the formatter layout.
type Group struct {
	Key   string
	Date  time.Time
	Todos []models.Todo
}

// Formatter buckets creation times by calendar day and renders headings
type Formatter struct {
	Layout     string
	Location   *time.Location
	TodayLabel string
}

// NewFormatter returns a Formatter for layout in local time.
// An empty layout falls back to DefaultLayout.
func NewFormatter(layout string) Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	return Formatter{Layout: layout, Location: time.Local, TodayLabel: DefaultTodayLabel}
}

func (f Formatter) loc() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f Formatter) layout() string {
	if f.Layout == "" {
		return DefaultLayout
	}
	return f.Layout
}

// Day returns midnight of the calendar day t falls on in the formatter location
func (f Formatter) Day(t time.Time) time.Time {
	y, m, d := t.In(f.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, f.loc())
}

// Key returns the heading for the day t falls on. The time of day is
// discarded before formatting.
func (f Formatter) Key(t time.Time) string {
	return f.Day(t).Format(f.layout())
}

// Group partitions todos by creation day. Groups appear in the order their
// first todo appears, and todos keep their collection order within a group.
// The layout never affects which group a todo lands in.
func (f Formatter) Group(todos []models.Todo) []Group {
	var groups []Group
	index := make(map[time.Time]int)
	for _, t := range todos {
		day := f.Day(t.CreatedAt)
		i, ok := index[day]
		if !ok {
			groups = append(groups, Group{
				Key:  day.Format(f.layout()),
				Date: day,
			})
			i = len(groups) - 1
			index[day] = i
		}
		groups[i].Todos = append(groups[i].Todos, t)
	}
	return groups
}

// Label returns the heading for g, using the today label when g is the
// current day.
func (f Formatter) Label(g Group, now time.Time) string {
	if g.Date.Equal(f.Day(now)) {
		if f.TodayLabel == "" {
			return DefaultTodayLabel
		}
		return f.TodayLabel
	}
	return g.Key
}
