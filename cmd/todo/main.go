package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todo/internal/config"
	"github.com/tgienger/todo/internal/grouping"
	"github.com/tgienger/todo/internal/logging"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui"
	"github.com/tgienger/todo/internal/ui/styles"
	"github.com/tgienger/todo/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes the program and returns the process exit code. Deferred
// cleanup runs before main exits. Extra program options are appended after
// the configured ones.
func run(args []string, stdout, stderr io.Writer, extra []tea.ProgramOption) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 2
	}

	// Handle version flag
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "todo %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	logger, err := logging.New(logging.Options{
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Prefix: "todo",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logging: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := styles.SetTheme(cfg.Theme); err != nil {
		logger.Error("invalid theme", "err", err)
		fmt.Fprintf(stderr, "Error loading theme: %v\n", err)
		return 2
	}

	st := store.New(store.WithLogger(logger.Logger))

	formatter := grouping.NewFormatter(cfg.DateFormat)
	formatter.TodayLabel = cfg.TodayLabel

	// Create and run the application
	app := ui.NewApp(st, logger.Logger, views.Options{
		Formatter:     formatter,
		ConfirmDelete: cfg.ConfirmDelete,
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, extra...)
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(stderr, "Error running application: %v\n", err)
		return 1
	}

	done, pending := st.Todos().Stats()
	logger.Info("session ended", "done", done, "pending", pending)
	return 0
}
