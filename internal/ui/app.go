package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

// App is the root Bubble Tea model. It forwards messages to the todo list
// view, which works on the session store.
type App struct {
	todoList *views.TodoListView
	log      *log.Logger
	width    int
	height   int
}

// Creates a new application
func NewApp(st *store.Store, logger *log.Logger, opts views.Options) *App {
	return &App{
		todoList: views.NewTodoListView(st, opts),
		log:      logger,
	}
}

func (a *App) Init() tea.Cmd {
	a.log.Info("session started")
	return a.todoList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
		a.log.Debug("window resized", "width", msg.Width, "height", msg.Height)
	}

	_, cmd := a.todoList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.todoList.View()
}
