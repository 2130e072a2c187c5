package store

import (
	"slices"
	"strings"
	"time"

	"github.com/tgienger/todo/internal/models"
)

// Todos is an ordered snapshot of the todo collection.
// Operations return a new snapshot and never write to the receiver.
type Todos []models.Todo

// Add appends a todo with the trimmed text. Blank text leaves the
// collection unchanged and reports false.
func (ts Todos) Add(id int64, text string, now time.Time) (Todos, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ts, false
	}
	out := make(Todos, len(ts), len(ts)+1)
	copy(out, ts)
	out = append(out, models.Todo{
		ID:        id,
		Text:      text,
		CreatedAt: now,
		Edit:      models.Viewing{},
	})
	return out, true
}

// Toggle flips the completed flag of the todo with the given id
func (ts Todos) Toggle(id int64) (Todos, bool) {
	return ts.update(id, func(t *models.Todo) bool {
		t.Completed = !t.Completed
		return true
	})
}

// Delete removes the todo with the given id, keeping the order of the rest
func (ts Todos) Delete(id int64) (Todos, bool) {
	i := ts.index(id)
	if i < 0 {
		return ts, false
	}
	out := make(Todos, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	out = append(out, ts[i+1:]...)
	return out, true
}

// StartEdit puts the todo into the editing state with its current text as draft
func (ts Todos) StartEdit(id int64) (Todos, bool) {
	return ts.update(id, func(t *models.Todo) bool {
		t.Edit = models.Editing{Draft: t.Text}
		return true
	})
}

// SetDraft replaces the edit buffer of a todo that is being edited
func (ts Todos) SetDraft(id int64, draft string) (Todos, bool) {
	return ts.update(id, func(t *models.Todo) bool {
		cur, editing := t.Draft()
		if !editing || cur == draft {
			return false
		}
		t.Edit = models.Editing{Draft: draft}
		return true
	})
}

// CancelEdit drops the draft and returns the todo to the viewing state
func (ts Todos) CancelEdit(id int64) (Todos, bool) {
	return ts.update(id, func(t *models.Todo) bool {
		if !t.IsEditing() {
			return false
		}
		t.Edit = models.Viewing{}
		return true
	})
}

// SaveEdit sets the text and returns the todo to the viewing state.
// The text is trimmed like Add; blank text behaves as CancelEdit.
func (ts Todos) SaveEdit(id int64, text string) (Todos, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ts.CancelEdit(id)
	}
	return ts.update(id, func(t *models.Todo) bool {
		t.Text = text
		t.Edit = models.Viewing{}
		return true
	})
}

// Find returns the todo with the given id
func (ts Todos) Find(id int64) (models.Todo, bool) {
	i := ts.index(id)
	if i < 0 {
		return models.Todo{}, false
	}
	return ts[i], true
}

// Editing returns the first todo in the editing state
func (ts Todos) Editing() (models.Todo, bool) {
	for _, t := range ts {
		if t.IsEditing() {
			return t, true
		}
	}
	return models.Todo{}, false
}

// Stats counts completed and pending todos
func (ts Todos) Stats() (done, pending int) {
	for _, t := range ts {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (ts Todos) index(id int64) int {
	return slices.IndexFunc(ts, func(t models.Todo) bool { return t.ID == id })
}

// update copies the collection and applies fn to the copy of the matching todo.
// The original snapshot is returned when nothing matches or fn reports no change.
func (ts Todos) update(id int64, fn func(*models.Todo) bool) (Todos, bool) {
	i := ts.index(id)
	if i < 0 {
		return ts, false
	}
	t := ts[i]
	if !fn(&t) {
		return ts, false
	}
	out := slices.Clone(ts)
	out[i] = t
	return out, true
}
