package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todo/internal/grouping"
	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/keys"
	"github.com/tgienger/todo/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusList
)

// Options configures a TodoListView
type Options struct {
	Formatter     grouping.Formatter
	ConfirmDelete bool
	Now           func() time.Time
}

// TodoListView shows the todos of the session grouped by creation day
type TodoListView struct {
	store     *store.Store
	formatter grouping.Formatter
	now       func() time.Time
	styles    *styles.Styles
	keys      keys.KeyMap
	help      help.Model

	width  int
	height int

	// UI state
	focus   FocusArea
	cursor  int // index into the display order
	scrollY int // first visible row
	input   textinput.Model

	// Inline editing; the draft itself lives in the store
	editInput textinput.Model

	// Delete confirmation
	confirmDelete    bool
	confirmingDelete bool
	deleteTargetID   int64
	deleteTargetName string

	// Help popup
	showHelpPopup bool
}

// NewTodoListView creates the todo list view on top of a session store
func NewTodoListView(st *store.Store, opts Options) *TodoListView {
	s := styles.NewStyles()

	input := textinput.New()
	input.Placeholder = "Add a new task..."
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = ""

	h := help.New()
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &TodoListView{
		store:         st,
		formatter:     opts.Formatter,
		now:           now,
		styles:        s,
		keys:          keys.DefaultKeyMap(),
		help:          h,
		focus:         FocusInput,
		input:         input,
		editInput:     editInput,
		confirmDelete: opts.ConfirmDelete,
	}
}

// Init initializes the view
func (v *TodoListView) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (v *TodoListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.input.Width = clamp(contentWidth-8, 10, 60)
		v.editInput.Width = clamp(contentWidth-12, 10, 60)
		v.help.Width = contentWidth
		v.ensureVisible()
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if todo, ok := v.store.Todos().Editing(); ok {
			return v.updateEditing(msg, todo)
		}

		if v.focus == FocusInput {
			return v.updateInput(msg)
		}

		return v.updateNormal(msg)
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	if v.editInput.Focused() {
		v.editInput, cmd = v.editInput.Update(msg)
	} else if v.input.Focused() {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *TodoListView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return v, tea.Quit

	case key.Matches(msg, v.keys.Enter):
		todo, ok := v.store.Add(v.input.Value())
		if !ok {
			return v, nil
		}
		v.input.Reset()
		v.selectID(todo.ID)
		return v, nil

	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Tab):
		v.focusList()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *TodoListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.store.Todos())-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if todo, ok := v.selected(); ok {
			v.store.Toggle(todo.ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if todo, ok := v.selected(); ok {
			return v, v.startEdit(todo)
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		todo, ok := v.selected()
		if !ok {
			return v, nil
		}
		if v.confirmDelete {
			v.confirmingDelete = true
			v.deleteTargetID = todo.ID
			v.deleteTargetName = todo.Text
			return v, nil
		}
		v.deleteTodo(todo.ID)
		return v, nil

	case key.Matches(msg, v.keys.New), key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.Enter):
		return v, v.focusInput()

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TodoListView) updateEditing(msg tea.KeyMsg, todo models.Todo) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return v, tea.Quit

	case key.Matches(msg, v.keys.Enter):
		v.store.SaveEdit(todo.ID, v.editInput.Value())
		v.stopEdit()
		return v, nil

	case key.Matches(msg, v.keys.Back):
		v.store.CancelEdit(todo.ID)
		v.stopEdit()
		return v, nil
	}

	var cmd tea.Cmd
	v.editInput, cmd = v.editInput.Update(msg)
	v.store.SetDraft(todo.ID, v.editInput.Value())
	return v, cmd
}

func (v *TodoListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.deleteTodo(v.deleteTargetID)
		v.confirmingDelete = false
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TodoListView) startEdit(todo models.Todo) tea.Cmd {
	if !v.store.StartEdit(todo.ID) {
		return nil
	}
	v.editInput.SetValue(todo.Text)
	v.editInput.CursorEnd()
	v.input.Blur()
	return v.editInput.Focus()
}

func (v *TodoListView) stopEdit() {
	v.editInput.Blur()
	v.editInput.Reset()
}

func (v *TodoListView) deleteTodo(id int64) {
	if !v.store.Delete(id) {
		return
	}
	if n := len(v.store.Todos()); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
	v.ensureVisible()
}

func (v *TodoListView) focusInput() tea.Cmd {
	v.focus = FocusInput
	return v.input.Focus()
}

func (v *TodoListView) focusList() {
	v.input.Blur()
	v.focus = FocusList
}

// ordered returns the todos in display order, group by group
func (v *TodoListView) ordered() []models.Todo {
	groups := v.formatter.Group(v.store.Todos())
	out := make([]models.Todo, 0, len(v.store.Todos()))
	for _, g := range groups {
		out = append(out, g.Todos...)
	}
	return out
}

func (v *TodoListView) selected() (models.Todo, bool) {
	todos := v.ordered()
	if v.cursor < 0 || v.cursor >= len(todos) {
		return models.Todo{}, false
	}
	return todos[v.cursor], true
}

func (v *TodoListView) selectID(id int64) {
	for i, t := range v.ordered() {
		if t.ID == id {
			v.cursor = i
			break
		}
	}
	v.ensureVisible()
}

type rowKind int

const (
	rowHeader rowKind = iota
	rowTodo
	rowSpacer
)

type row struct {
	kind  rowKind
	label string
	today bool
	todo  models.Todo
	index int // display index of the todo
}

// rows lays out the grouped list, one entry per rendered line
func (v *TodoListView) rows() []row {
	now := v.now()
	var rows []row
	idx := 0
	for gi, g := range v.formatter.Group(v.store.Todos()) {
		if gi > 0 {
			rows = append(rows, row{kind: rowSpacer})
		}
		label := v.formatter.Label(g, now)
		rows = append(rows, row{kind: rowHeader, label: label, today: label != g.Key})
		for _, t := range g.Todos {
			rows = append(rows, row{kind: rowTodo, todo: t, index: idx})
			idx++
		}
	}
	return rows
}

func (v *TodoListView) visibleRows() int {
	// title, counters, progress, input box, help and spacing
	return max(v.height-12, 3)
}

func (v *TodoListView) ensureVisible() {
	line := 0
	for i, r := range v.rows() {
		if r.kind == rowTodo && r.index == v.cursor {
			line = i
			break
		}
	}
	// keep the group heading visible above its first todo
	if line > 0 && line-1 < v.scrollY {
		line--
	}
	visible := v.visibleRows()
	if line < v.scrollY {
		v.scrollY = line
	} else if line >= v.scrollY+visible {
		v.scrollY = line - visible + 1
	}
	v.scrollY = max(v.scrollY, 0)
}

// View renders the view
func (v *TodoListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(v.renderInput())
	b.WriteString("\n\n")

	b.WriteString(v.renderTodoList())

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(v.help.View(v.keys)))

	padded := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return styles.CenterView(padded, v.width, v.height)
}

func (v *TodoListView) renderHeader() string {
	s := v.styles
	done, pending := v.store.Todos().Stats()
	total := done + pending

	counts := fmt.Sprintf("%s %d  %s %d  %s %d",
		s.Done.Render("✔"), done,
		s.Pending.Render("•"), pending,
		s.Total.Render("Total"), total,
	)
	title := lipgloss.JoinHorizontal(lipgloss.Center, s.Title.Render("Todo List"), "   ", counts)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.TitleMuted.Render(progressBar(done, total, 28)),
	)
}

func (v *TodoListView) renderInput() string {
	s := v.styles
	inputStyle := s.Input
	if v.focus == FocusInput && v.input.Focused() {
		inputStyle = s.InputFocused
	}
	contentWidth := styles.ContentWidth(v.width)
	return inputStyle.Width(clamp(contentWidth-8, 20, 64)).Render(v.input.View())
}

func (v *TodoListView) renderTodoList() string {
	s := v.styles

	rows := v.rows()
	if len(rows) == 0 {
		return s.TitleMuted.Render("No todos yet. Add some tasks above!")
	}

	end := min(v.scrollY+v.visibleRows(), len(rows))
	start := min(v.scrollY, end)

	var lines []string
	for _, r := range rows[start:end] {
		switch r.kind {
		case rowSpacer:
			lines = append(lines, "")
		case rowHeader:
			headerStyle := s.DateHeader
			if r.today {
				headerStyle = s.TodayHeader
			}
			lines = append(lines, headerStyle.Render(r.label))
		case rowTodo:
			lines = append(lines, v.renderTodoItem(r.todo, r.index == v.cursor && v.focus == FocusList))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *TodoListView) renderTodoItem(todo models.Todo, selected bool) string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-8, 20)

	box := s.BoxUnchecked.Render(styles.Current.BoxUnchecked)
	text := todo.Text
	if todo.Completed {
		box = s.BoxChecked.Render(styles.Current.BoxChecked)
		text = s.TodoDone.Render(text)
	}
	if todo.IsEditing() {
		text = v.editInput.View()
	}

	itemStyle := s.ListItem
	if selected {
		itemStyle = s.ListSelected
	}
	return itemStyle.Width(width).Render(box + " " + text)
}

func (v *TodoListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Keyboard Shortcuts"),
		"",
		v.help.FullHelpView(v.keys.FullHelp()),
		"",
		s.TitleMuted.Render("Press any key to close"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Popup.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TodoListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Danger.Render("Delete Todo?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%q", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

// progressBar renders a fixed-width completion bar with a done/total suffix
func progressBar(done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := 0
	if total > 0 {
		filled = min(done*width/total, width)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
