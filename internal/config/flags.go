package config

import "flag"

// parseFlags defines the CLI flags on fs and parses args into cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme (tokyonight, classic, mono)")
	fs.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Go time layout used for date groups")
	fs.StringVar(&cfg.TodayLabel, "today-label", cfg.TodayLabel, "Heading used for the current day")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.ConfirmDelete, "confirm-delete", cfg.ConfirmDelete, "Ask before deleting a todo")

	noAltScreen := fs.Bool("no-alt-screen", !cfg.AltScreen, "Render inline instead of in the alternate screen")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Print version and exit (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.AltScreen = !*noAltScreen
	return nil
}
