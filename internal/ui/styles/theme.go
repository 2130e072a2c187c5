package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color

	// Symbols
	BoxUnchecked string
	BoxChecked   string
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),

	BoxUnchecked: "○",
	BoxChecked:   "●",
}

// Classic uses the basic 256-color palette
var Classic = Theme{
	Name: "Classic",

	Background:    lipgloss.Color("0"),
	Foreground:    lipgloss.Color("15"),
	ForegroundDim: lipgloss.Color("8"),

	Primary:   lipgloss.Color("12"),
	Secondary: lipgloss.Color("13"),
	Accent:    lipgloss.Color("14"),

	Success: lipgloss.Color("42"),
	Warning: lipgloss.Color("214"),
	Error:   lipgloss.Color("9"),

	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("12"),
	Selection:   lipgloss.Color("237"),

	BoxUnchecked: "☐",
	BoxChecked:   "☑",
}

// Mono renders without colors
var Mono = Theme{
	Name:         "Mono",
	BoxUnchecked: "[ ]",
	BoxChecked:   "[x]",
}

var themes = map[string]Theme{
	"tokyonight": TokyoNight,
	"classic":    Classic,
	"mono":       Mono,
}

// Current holds the active theme
var Current = TokyoNight

// SetTheme makes the named theme current
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	Current = t
	return nil
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Counters
	Done    lipgloss.Style
	Pending lipgloss.Style
	Total   lipgloss.Style

	// Date group headings
	DateHeader  lipgloss.Style
	TodayHeader lipgloss.Style

	// Todo rows
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	TodoDone     lipgloss.Style
	BoxChecked   lipgloss.Style
	BoxUnchecked lipgloss.Style

	// Popups
	Popup lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	Danger        lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Help text
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Done: lipgloss.NewStyle().
			Foreground(t.Success),

		Pending: lipgloss.NewStyle().
			Foreground(t.Warning),

		Total: lipgloss.NewStyle().
			Foreground(t.Accent),

		DateHeader: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		TodayHeader: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		TodoDone: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		BoxChecked: lipgloss.NewStyle().
			Foreground(t.Secondary),

		BoxUnchecked: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Popup: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),
	}
}
