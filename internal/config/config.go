package config

const (
	DefaultTheme      = "tokyonight"
	DefaultDateFormat = "Jan 2, 2006"
	DefaultTodayLabel = "Today"
	DefaultLogLevel   = "info"

	appName         = "todo"
	userConfigName  = "config.toml"
	projectFileName = ".todo.toml"
)

// Config holds the runtime settings of the application.
type Config struct {
	Theme         string `toml:"theme"`
	DateFormat    string `toml:"date_format"`
	TodayLabel    string `toml:"today_label"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	ConfirmDelete bool   `toml:"confirm_delete"`
	AltScreen     bool   `toml:"alt_screen"`

	// ShowVersion is set by --version / -v only.
	ShowVersion bool `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.DateFormat = DefaultDateFormat
	cfg.TodayLabel = DefaultTodayLabel
	cfg.LogLevel = DefaultLogLevel
	cfg.AltScreen = true
}
