package models

import "time"

// EditState is the transient UI state of a todo: Viewing or Editing.
// A nil EditState is treated as Viewing.
type EditState interface {
	editState()
}

// Viewing is the resting state of a todo
type Viewing struct{}

// Editing holds the in-progress text while a todo is being edited
type Editing struct {
	Draft string
}

func (Viewing) editState() {}
func (Editing) editState() {}

// Todo represents a single task
type Todo struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
	Edit      EditState
}

// IsEditing reports whether the todo is in the editing state
func (t Todo) IsEditing() bool {
	_, ok := t.Edit.(Editing)
	return ok
}

// Draft returns the edit buffer and whether the todo is being edited
func (t Todo) Draft() (string, bool) {
	e, ok := t.Edit.(Editing)
	return e.Draft, ok
}
