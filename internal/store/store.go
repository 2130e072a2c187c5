package store

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/models"
)

// Store owns the todo collection for one session.
// It is not safe for concurrent use; the UI event loop is its only writer.
type Store struct {
	todos  Todos
	now    func() time.Time
	lastID int64
	log    *log.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for creation times and ids
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger that receives mutation events
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates an empty session store
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	return s
}

// Todos returns the current snapshot
func (s *Store) Todos() Todos {
	return s.todos
}

// Add creates a todo from text. Blank text is ignored.
func (s *Store) Add(text string) (models.Todo, bool) {
	now := s.now()
	id := s.nextID(now)
	next, ok := s.todos.Add(id, text, now)
	if !ok {
		s.log.Debug("add ignored", "reason", "blank text")
		return models.Todo{}, false
	}
	s.lastID = id
	s.todos = next
	t := next[len(next)-1]
	s.log.Debug("todo added", "id", t.ID, "text", t.Text)
	return t, true
}

// Toggle flips the completed flag of a todo
func (s *Store) Toggle(id int64) bool {
	return s.apply("toggle", id, s.todos.Toggle)
}

// Delete removes a todo
func (s *Store) Delete(id int64) bool {
	return s.apply("delete", id, s.todos.Delete)
}

// StartEdit puts a todo into the editing state, cancelling any other edit
func (s *Store) StartEdit(id int64) bool {
	if cur, ok := s.todos.Editing(); ok && cur.ID != id {
		s.CancelEdit(cur.ID)
	}
	return s.apply("start edit", id, s.todos.StartEdit)
}

// SetDraft updates the edit buffer of a todo being edited
func (s *Store) SetDraft(id int64, draft string) bool {
	next, ok := s.todos.SetDraft(id, draft)
	if ok {
		s.todos = next
	}
	return ok
}

// CancelEdit returns a todo to the viewing state without changing its text
func (s *Store) CancelEdit(id int64) bool {
	return s.apply("cancel edit", id, s.todos.CancelEdit)
}

// SaveEdit replaces the text of a todo and ends editing
func (s *Store) SaveEdit(id int64, text string) bool {
	return s.apply("save edit", id, func(id int64) (Todos, bool) {
		return s.todos.SaveEdit(id, text)
	})
}

func (s *Store) apply(op string, id int64, fn func(int64) (Todos, bool)) bool {
	next, ok := fn(id)
	if !ok {
		s.log.Debug(op+" ignored", "id", id)
		return false
	}
	s.todos = next
	s.log.Debug(op, "id", id)
	return true
}

// nextID derives an id from the clock in milliseconds, bumped past the last
// issued id so todos created within the same millisecond stay distinct.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}
